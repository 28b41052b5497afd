package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/libmatcha/matcha"
)

var watchCmd = &cobra.Command{
	Use:   "watch PATTERN FILE",
	Short: "Re-run extraction whenever FILE changes",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := matcha.Compile(args[0])
		if err != nil {
			logger.Fatal("Invalid pattern", zap.String("pattern", args[0]), zap.Error(err))
		}
		if err := runWatch(p, args[1]); err != nil {
			logger.Fatal("Watch failed", zap.String("file", args[1]), zap.Error(err))
		}
	},
}

func runWatch(p *matcha.Pattern, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("error adding file to watcher: %w", err)
	}

	scan := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("Error reading watched file", zap.String("file", path), zap.Error(err))
			return
		}
		matches := p.FindAllMatches(string(data))
		fmt.Println(headStyle.Sprintf("%s: %d match(es)", path, len(matches)))
		for _, m := range matches {
			fmt.Printf("  %s %s\n", spanStyle.Sprintf("[%d:%d]", m.Start, m.End), m.Value)
		}
	}
	scan()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				scan()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", zap.Error(err))
		}
	}
}
