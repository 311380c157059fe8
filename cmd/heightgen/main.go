// heightgen writes a procedural grayscale heightmap the viewer can load.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/heightview/internal/engine/terrain"
	"github.com/Faultbox/heightview/internal/logger"
)

func main() {
	def := terrain.DefaultGenerateOptions()

	out := flag.String("out", "heightmap.png", "Output image (.png, .bmp, .tif)")
	size := flag.Int("size", def.Size, "Width and height in pixels")
	seed := flag.Int64("seed", def.Seed, "Noise seed")
	octaves := flag.Int("octaves", def.Octaves, "Number of noise octaves")
	frequency := flag.Float64("frequency", def.Frequency, "Base frequency in cycles per image")
	persistence := flag.Float64("persistence", def.Persistence, "Amplitude falloff per octave")
	lacunarity := flag.Float64("lacunarity", def.Lacunarity, "Frequency growth per octave")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	opts := terrain.GenerateOptions{
		Size:        *size,
		Seed:        *seed,
		Octaves:     *octaves,
		Frequency:   *frequency,
		Persistence: *persistence,
		Lacunarity:  *lacunarity,
	}
	if err := run(*out, opts); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(path string, opts terrain.GenerateOptions) error {
	format, err := terrain.FormatFromPath(path)
	if err != nil {
		return err
	}

	logger.Debug("generating heightmap",
		zap.Int("size", opts.Size),
		zap.Int64("seed", opts.Seed),
		zap.Int("octaves", opts.Octaves),
	)
	img, err := terrain.Generate(opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := terrain.Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("heightmap written",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("size", opts.Size),
	)
	return nil
}
