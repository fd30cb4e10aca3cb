package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/btern/btern/cpu"
	"github.com/btern/btern/emulator"
	"github.com/btern/btern/word"
)

func main() {
	var build string
	var image string
	var output string
	var verbose bool

	flag.StringVar(&build, "c", "", ".star program builder script to run")
	flag.StringVar(&image, "i", "", "binary image to load")
	flag.StringVar(&output, "o", "", "save binary image, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	prog := &cpu.Program{}
	var words []word.Word

	// Build a new instruction stream from a script.
	if len(build) != 0 {
		inf, err := os.Open(build)
		if err != nil {
			log.Fatalf("%v: %v", build, err)
		}
		defer inf.Close()

		builder := &cpu.Builder{Verbose: verbose}
		prog, err = builder.Build(build, inf)
		if err != nil {
			log.Fatalf("%v: %v", build, err)
		}

		words, err = prog.Binary()
		if err != nil {
			log.Fatalf("%v: %v", build, err)
		}
	}

	// Load a previously saved image.
	if len(image) != 0 {
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		words, err = emulator.ReadImage(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	}

	if len(words) == 0 {
		log.Fatalf("%v: no program; use -c or -i", os.Args[0])
	}

	if len(output) != 0 {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()

		err = emulator.WriteImage(ouf, words)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	emu.Cpu.Reset()
	err := emu.Cpu.Load(words, emulator.LOAD_BASE)
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(emu.Cpu.String())
}
