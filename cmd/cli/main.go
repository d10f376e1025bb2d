package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"eve_market/internal/app/di"
	"eve_market/internal/config"
	"eve_market/internal/feature/marketsnapshot/domain/entity"
	"eve_market/internal/feature/marketsnapshot/transport/console"
	"eve_market/internal/feature/marketsnapshot/usecase"
	"eve_market/internal/platform/logger"
)

// composer はCLIが使うユースケースです。
type composer interface {
	ComposeQuery(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error)
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}
	// 標準出力はレンダリング結果のみにする
	logger.Setup(os.Stderr, "text", cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter, rdb := di.NewLimiter(ctx, cfg)
	if rdb != nil {
		defer rdb.Close()
	}
	uc := di.NewSnapshotUsecase(cfg, limiter)

	return run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, uc)
}

// run はフラグを解釈してスナップショットを表示し、終了コードを返します。
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, uc composer) int {
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	all := fs.Bool("all", false, "aggregate orders from every location in the region")
	location := fs.Int64("location", 0, "restrict orders to this location id (0 uses the configured default)")
	window := fs.Int("window", 0, "number of most recent days of history to summarise (0 uses the configured default)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: cli [-all] [-location id] [-window n] <item name...>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *all && *location != 0 {
		fmt.Fprintln(stderr, "-all and -location cannot be used together")
		return 2
	}
	if *window < 0 {
		fmt.Fprintln(stderr, "-window must not be negative")
		return 2
	}

	name := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprint(stdout, "Item name: ")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintln(stderr, "read item name:", err)
			return 1
		}
		name = line
	}

	q := usecase.Query{Name: name, WindowSize: *window}
	switch {
	case *all:
		q.OverrideScope, q.Scope = true, entity.AllLocations()
	case *location > 0:
		q.OverrideScope, q.Scope = true, entity.AtLocation(*location)
	}

	snap, err := uc.ComposeQuery(ctx, q)
	if err != nil {
		// エラーメッセージは加工せずそのまま表示する
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	if err := console.Render(stdout, snap); err != nil {
		fmt.Fprintln(stderr, "render:", err)
		return 1
	}
	return 0
}
