// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/pic10/emulator"
	"github.com/ezrec/pic10/mcu"
)

// variants maps the -m flag to a device variant.
var variants = map[string]mcu.Variant{
	"10f200": mcu.PIC10F200,
	"10f202": mcu.PIC10F202,
	"10f204": mcu.PIC10F204,
	"10f206": mcu.PIC10F206,
}

func main() {
	var compile string
	var image string
	var model string
	var steps int
	var nowdt bool
	var ignoreFault bool
	var dump bool
	var listing bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&image, "b", "", "raw program image to load")
	flag.StringVar(&model, "m", "10f200", "device variant (10f200, 10f202, 10f204, 10f206)")
	flag.IntVar(&steps, "n", 1000000, "maximum steps to execute")
	flag.BoolVar(&nowdt, "w", false, "disable the watchdog timer")
	flag.BoolVar(&ignoreFault, "i", false, "continue past reserved opcodes instead of halting")
	flag.BoolVar(&dump, "d", false, "dump device state at exit")
	flag.BoolVar(&listing, "l", false, "print the assembled listing, do not execute")
	flag.BoolVar(&verbose, "v", false, "verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	variant, ok := variants[strings.ToLower(model)]
	if !ok {
		log.Fatalf("%v: unknown variant", model)
	}

	config := mcu.DefaultConfig()
	config.WDTE = !nowdt

	emu := emulator.NewEmulator(variant, config)
	emu.Verbose = verbose

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &mcu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}

		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		emu.Program = prog
	}

	if listing {
		fmt.Print(emu.Program.String())
		return
	}

	if err := emu.Reset(); err != nil {
		log.Fatal(err)
	}

	if len(image) != 0 {
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		if err := emu.LoadImage(inf); err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		emu.Mcu.Reset()
	}

	var executed int
	var event mcu.Event
	for executed < steps {
		ran, ev := emu.Run(steps - executed)
		executed += ran
		event = ev
		if ev.Kind == mcu.EV_FAULT && ignoreFault {
			log.Printf("%v: %v at %03x (ignored)", ev.Kind, ev.Code, emu.Mcu.PC())
			continue
		}
		break
	}

	switch event.Kind {
	case mcu.EV_FAULT:
		log.Printf("%v: %v after %v steps", event.Kind, event.Code, executed)
	case mcu.EV_NONE:
		// Step bound reached.
	default:
		log.Printf("%v after %v steps", event.Kind, executed)
	}

	if dump {
		fmt.Print(emu.Mcu.String())
	}
}
