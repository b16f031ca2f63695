// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

// Command esl simulates the built-in demo circuits and exports their
// netlists, either from flags or from an interactive shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	esl "github.com/Dud3ek/ESL"
	"github.com/Dud3ek/ESL/rtl"
)

const (
	historyFile = ".esl_history"
	prompt      = "esl> "
	banner      = "esl shell. Type help for commands, Ctrl+D to exit."
)

// A bench is a demo circuit wired to top-level signals.
type bench struct {
	top  *esl.Module
	clk  *esl.Signal
	sigs map[string]*esl.Signal // poke/peek by name
	sim  *esl.Simulator
	tr   *esl.Trace
}

type buildFn func() *bench

var demos = map[string]buildFn{
	"blinker": func() *bench {
		clk, led := esl.NewSignal("clk", 1), esl.NewSignal("led", 1)
		return newBench(rtl.Blinker(clk, led, 3), clk, clk, led)
	},
	"wax_wane": func() *bench {
		clk, led := esl.NewSignal("clk", 1), esl.NewSignal("led", 1)
		return newBench(rtl.WaxWane(clk, led, 6), clk, clk, led)
	},
	"dualport_ram": func() *bench {
		clk := esl.NewSignal("clk", 1)
		wr := esl.NewSignal("wr", 1)
		wrAddr := esl.NewSignal("wr_addr", 4)
		rdAddr := esl.NewSignal("rd_addr", 4)
		dataI := esl.NewSignal("data_i", 8)
		dataO := esl.NewSignal("data_o", 8)
		top := rtl.DualPortRam(clk, wr, wrAddr, rdAddr, dataI, dataO)
		return newBench(top, clk, clk, wr, wrAddr, rdAddr, dataI, dataO)
	},
	"record_play": func() *bench {
		clk := esl.NewSignal("clk", 1)
		btnA := esl.NewSignal("button_a", 1)
		btnB := esl.NewSignal("button_b", 1)
		leds := esl.NewSignal("leds", 5)
		top := rtl.RecordPlay(clk, btnA, btnB, leds, 4, 4)
		return newBench(top, clk, clk, btnA, btnB, leds)
	},
	"classic_fsm": func() *bench {
		clk := esl.NewSignal("clk", 1)
		inputs := esl.NewSignal("inputs", 2)
		outputs := esl.NewSignal("outputs", 4)
		top := rtl.ClassicFsm(clk, inputs, outputs, 2)
		return newBench(top, clk, clk, inputs, outputs)
	},
}

func newBench(top *esl.Module, clk *esl.Signal, watch ...*esl.Signal) *bench {
	b := &bench{top: top, clk: clk, sigs: make(map[string]*esl.Signal)}
	b.tr = esl.NewTrace(watch...)
	for _, s := range watch {
		b.sigs[s.Name()] = s
	}
	return b
}

func (b *bench) start() error {
	d, err := esl.Elaborate(b.top)
	if err != nil {
		return err
	}
	for _, w := range d.Warnings() {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	b.sim, err = esl.NewSimulator(d, esl.WithTrace(b.tr))
	return err
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for n := range demos {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func main() {
	var (
		circuit = flag.String("circuit", "", "demo circuit to run (empty for interactive shell)")
		cycles  = flag.Int("cycles", 16, "number of clock cycles to run")
		netlist = flag.Bool("netlist", false, "print the structural netlist instead of simulating")
		table   = flag.Bool("table", false, "print the signal table after the run")
	)
	flag.Parse()

	if *circuit == "" {
		os.Exit(runShell())
	}
	build, ok := demos[*circuit]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown circuit %q; have: %s\n", *circuit, strings.Join(demoNames(), ", "))
		os.Exit(1)
	}
	b := build()
	if *netlist {
		if err := esl.WriteNetlist(os.Stdout, b.top); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if err := b.start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := b.sim.Clock(b.clk, *cycles); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *table {
		if err := b.tr.WriteTable(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

const helpText = `commands:
  circuits             list demo circuits
  load <name>          load a demo circuit
  clock [n]            run n clock cycles (default 1)
  peek <signal>        print a signal's value
  poke <signal> <val>  drive an input signal
  netlist              print the structural netlist
  table                print the recorded signal table
  help                 show this help
  quit                 exit
`

func runShell() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var b *bench
	for {
		line, err := ln.Prompt(prompt)
		if err != nil { // Ctrl+D or Ctrl+C
			fmt.Println()
			return 0
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		args := strings.Fields(line)
		switch args[0] {
		case "quit", "exit":
			return 0
		case "help":
			fmt.Print(helpText)
		case "circuits":
			fmt.Println(strings.Join(demoNames(), "\n"))
		case "load":
			if len(args) != 2 {
				fmt.Println("usage: load <name>")
				continue
			}
			build, ok := demos[args[1]]
			if !ok {
				fmt.Printf("unknown circuit %q\n", args[1])
				continue
			}
			nb := build()
			if err := nb.start(); err != nil {
				fmt.Println(err)
				continue
			}
			b = nb
			fmt.Printf("loaded %s\n", args[1])
		default:
			if b == nil {
				fmt.Println("no circuit loaded; see circuits / load")
				continue
			}
			shellCommand(b, args)
		}
	}
}

func shellCommand(b *bench, args []string) {
	switch args[0] {
	case "clock":
		n := 1
		if len(args) > 1 {
			var err error
			if n, err = strconv.Atoi(args[1]); err != nil {
				fmt.Println("usage: clock [n]")
				return
			}
		}
		if err := b.sim.Clock(b.clk, n); err != nil {
			fmt.Println(err)
		}
	case "peek":
		if len(args) != 2 {
			fmt.Println("usage: peek <signal>")
			return
		}
		s, ok := b.sigs[args[1]]
		if !ok {
			fmt.Printf("unknown signal %q\n", args[1])
			return
		}
		fmt.Println(b.sim.Peek(s))
	case "poke":
		if len(args) != 3 {
			fmt.Println("usage: poke <signal> <value>")
			return
		}
		s, ok := b.sigs[args[1]]
		if !ok {
			fmt.Printf("unknown signal %q\n", args[1])
			return
		}
		x, err := strconv.ParseUint(args[2], 0, 64)
		if err != nil {
			fmt.Println(err)
			return
		}
		v, err := esl.ValueFromUint64(s.Width(), x)
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := b.sim.Poke(s, v); err != nil {
			fmt.Println(err)
		}
	case "netlist":
		if err := esl.WriteNetlist(os.Stdout, b.top); err != nil {
			fmt.Println(err)
		}
	case "table":
		if err := b.tr.WriteTable(os.Stdout); err != nil {
			fmt.Println(err)
		}
	default:
		fmt.Printf("unknown command %q; try help\n", args[0])
	}
}
