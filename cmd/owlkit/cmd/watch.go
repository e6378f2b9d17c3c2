package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mendelkb/owlkit/internal/adapters/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Keep the library in sync with a directory of archives",
	Long: "Watches a directory and re-imports every created or modified ontology\n" +
		"archive into the library under its file name. Runs until interrupted.",
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	err = w.Watch(args[0], func(path string) {
		meta, err := importArchive(lib, path, "")
		if err != nil {
			logger.Warn("import failed", zap.String("path", path), zap.Error(err))
			return
		}
		fmt.Printf("%s⚡ imported %q%s (%d classes)\n",
			colorBold, meta.Name, colorReset, meta.Classes)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s⚡ watching %s%s (Ctrl-C to stop)\n", colorBold, args[0], colorReset)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
