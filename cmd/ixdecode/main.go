package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"multisig-decoder-sol/internal/config"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/logic/ixdecoder"
	"multisig-decoder-sol/internal/logic/mintmeta"
	"multisig-decoder-sol/pkg/logger"
)

var (
	configFile = flag.String("f", "etc/ixdecode.yaml", "the config file")
	inputFile  = flag.String("i", "-", "instruction batch (yaml), - for stdin")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	if err := logger.Init(c.Logger.ToLogOption()); err != nil {
		logx.Errorf("logger init failed: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	network, err := c.CurrentNetwork()
	if err != nil {
		logx.Errorf("%v", err)
		os.Exit(1)
	}

	items, err := loadBatch(*inputFile)
	if err != nil {
		logx.Errorf("load batch failed: %v", err)
		os.Exit(1)
	}
	logx.Infof("decoding %d instructions on %s", len(items), network.Label)

	var conn mintmeta.Connection
	if c.MintLookup.Enabled {
		conn = newMintConnection(&c, network)
	}

	run(os.Stdout, items, c.DefaultScale(), network, conn, time.Duration(c.MintLookup.TimeoutMs)*time.Millisecond)
}

func loadBatch(path string) ([]batchItem, error) {
	if path == "-" {
		return readBatch(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readBatch(f)
}

func newMintConnection(c *config.Config, network config.Network) mintmeta.Connection {
	var conn mintmeta.Connection = mintmeta.NewRPCConnection(network.URL)
	if c.MintLookup.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: c.MintLookup.RedisAddr})
		conn = mintmeta.NewRedisCachedConnection(conn, rdb, time.Duration(c.MintLookup.CacheTTLSec)*time.Second)
	}
	return conn
}

// run 解码并输出每条指令；conn 为 nil 时跳过 mint 查询
func run(w io.Writer, items []batchItem, defaultScale core.DecimalScale, network config.Network,
	conn mintmeta.Connection, timeout time.Duration) {
	for i, item := range items {
		scale := item.Scale
		if scale == nil {
			scale = defaultScale
		}

		decoded := ixdecoder.Decode(item.Raw, scale)
		fmt.Fprintf(w, "#%d [%s] %s\n", i, decoded.Family, decoded)
		if decoded.Context != "" {
			fmt.Fprintf(w, "    %s\n", decoded.Context)
		}

		if conn == nil || decoded.Family != core.FamilyToken || !decoded.IsSupported() {
			continue
		}
		source, ok := item.Raw.AccountAt(0)
		if !ok {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		info, found := mintmeta.ResolveAccountMint(ctx, conn, source)
		cancel()
		if found {
			fmt.Fprintf(w, "    mint=%s decimals=%d %s\n", info.Mint, info.Decimals, network.ExplorerAccountURL(info.Mint.String()))
		}
	}
}
