// Command pooldemo exercises the thread pool: it starts a pool of workers,
// submits one task without an argument and one carrying a 4-byte integer,
// then drains the pool and closes it.
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/yuanluo2/threadpool"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:          os.Stderr,
		TimeFormat:   time.RFC3339,
		TimeLocation: time.UTC,
	}).Level(parseLevel(cfg.LogLevel)).With().Timestamp().Logger()

	opts := []threadpool.Option{threadpool.WithLogger(log)}
	if cfg.Pinned {
		opts = append(opts, threadpool.WithPinnedWorkers())
	}
	pool := threadpool.New(cfg.Workers, opts...)

	if err := pool.SubmitFunc(func() {
		fmt.Println("Hello, thread.")
	}); err != nil {
		log.Error().Err(err).Msg("submit failed")
	}

	num := make([]byte, 4)
	binary.LittleEndian.PutUint32(num, 39)
	if err := pool.Submit(func(arg []byte) {
		fmt.Println(binary.LittleEndian.Uint32(arg))
	}, num); err != nil {
		log.Error().Err(err).Msg("submit failed")
	}

	pool.Shutdown()

	st := pool.Stats()
	log.Info().
		Uint64("submitted", st.Submitted).
		Uint64("completed", st.Completed).
		Msg("pool drained")

	pool.Close()
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
