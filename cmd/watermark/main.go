// Package main provides a command-line launch of the watermark pipeline on image files
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/UnendingLoop/ImageWatermarker/internal/config"
	"github.com/UnendingLoop/ImageWatermarker/internal/logger"
	"github.com/UnendingLoop/ImageWatermarker/internal/model"
	"github.com/UnendingLoop/ImageWatermarker/internal/service"
	"github.com/wb-go/wbf/zlog"
)

func main() {
	envFile := flag.String("env", "./.env", "path to .env file with WATERMARK_* defaults")
	in := flag.String("in", "", "base image path (png/jpg/gif/tif/bmp/webp)")
	out := flag.String("out", "", "output path (defaults to <name>_watermarked<ext>)")
	var cli model.WatermarkSpec
	bindSpecFlags(flag.CommandLine, &cli)
	flag.Parse()

	if *in == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -in base.png [-out result.png] [-wm logo.png] [-position bottom_right] ...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *out == "" {
		*out = defaultOutputPath(*in)
	}

	// инициализировать конфиг/ считать энвы
	appConfig := config.New(*envFile)
	spec, err := config.LoadSpec(appConfig)
	if err != nil {
		log.Fatalf("Failed to read watermark config: %v\nExiting app...", err)
	}
	// явно заданные флаги перекрывают конфиг
	flag.Visit(func(f *flag.Flag) { overrideSpec(&spec, cli, f.Name) })

	// стартуем логгер
	zlog.InitConsole()
	if err := zlog.SetLevel(config.LogLevel(appConfig)); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	base, err := readBase(*in)
	if err != nil {
		log.Fatalf("Failed to read base image: %v", err)
	}

	var svc WatermarkService = service.NewWatermarkService(nil)
	ctx := logger.WithInvocation(context.Background(), *in)

	res := svc.Process(ctx, base, spec)
	if res.Err != nil {
		log.Printf("Watermark was not applied: %v. Writing the original image...", res.Err)
	}

	if err := writeResult(*out, res.Image); err != nil {
		log.Fatalf("Failed to write result: %v", err)
	}
	log.Printf("Result saved to %s", *out)
}

func bindSpecFlags(fs *flag.FlagSet, spec *model.WatermarkSpec) {
	fs.StringVar(&spec.Path, "wm", "", "watermark image path (default $"+config.KeyPath+")")
	fs.Func("position", "anchor, top_left..bottom_right (default $"+config.KeyPosition+" or bottom_right)", func(s string) error {
		spec.Anchor = model.ParseAnchor(s)
		return nil
	})
	fs.Float64Var(&spec.Opacity, "opacity", model.DefaultOpacity, "watermark opacity [0,1]")
	fs.Float64Var(&spec.Scale, "scale", model.DefaultScale, "watermark long edge as a fraction of the base's shorter side (0,1]")
	fs.IntVar(&spec.MarginX, "margin-x", model.DefaultMargin, "horizontal margin in pixels [0,500]")
	fs.IntVar(&spec.MarginY, "margin-y", model.DefaultMargin, "vertical margin in pixels [0,500]")
	fs.IntVar(&spec.OffsetX, "offset-x", 0, "horizontal offset in pixels [-500,500]")
	fs.IntVar(&spec.OffsetY, "offset-y", 0, "vertical offset in pixels [-500,500]")
}

func overrideSpec(spec *model.WatermarkSpec, cli model.WatermarkSpec, name string) {
	switch name {
	case "wm":
		spec.Path = cli.Path
	case "position":
		spec.Anchor = cli.Anchor
	case "opacity":
		spec.Opacity = cli.Opacity
	case "scale":
		spec.Scale = cli.Scale
	case "margin-x":
		spec.MarginX = cli.MarginX
	case "margin-y":
		spec.MarginY = cli.MarginY
	case "offset-x":
		spec.OffsetX = cli.OffsetX
	case "offset-y":
		spec.OffsetY = cli.OffsetY
	}
}
