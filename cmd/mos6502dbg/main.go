// Command mos6502dbg is an interactive REPL for the mos6502 core: load a
// program into memory, step or run it, and inspect registers and memory
// between steps.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/n-ulricksen/mos6502/cpu6502"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func main() {
	mem := cpu6502.NewMemory()
	cpu := cpu6502.NewCPU(mem)

	fmt.Println(labelStyle.Render("mos6502dbg") + " — type a command, or \"exit\" to quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}

		root := newRootCmd(cpu, mem)
		root.SetArgs(strings.Fields(line))
		if err := root.Execute(); err != nil {
			fmt.Println(errStyle.Render(err.Error()))
		}
	}
}

func newRootCmd(cpu *cpu6502.CPU, mem *cpu6502.Memory) *cobra.Command {
	root := &cobra.Command{Use: "mos6502dbg", SilenceUsage: true, SilenceErrors: true}

	root.AddCommand(
		newRegsCmd(cpu),
		newMemCmd(mem),
		newLoadCmd(mem),
		newFileCmd(mem),
		newStepCmd(cpu),
		newRunCmd(cpu),
		newPCCmd(cpu),
		newResetCmd(cpu),
		newDumpCmd(cpu),
		newDisasmCmd(cpu),
	)
	return root
}

func newRegsCmd(cpu *cpu6502.CPU) *cobra.Command {
	return &cobra.Command{
		Use:     "regs",
		Aliases: []string{"mcu"},
		Short:   "print register and flag state",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s A=%#02x X=%#02x Y=%#02x SP=%#02x PC=%#04x\n",
				labelStyle.Render("regs:"), cpu.A.Value(), cpu.X.Value(), cpu.Y.Value(), cpu.SP.Value(), cpu.PC.Value())
			fmt.Printf("%s %s\n", labelStyle.Render("flags:"), formatFlags(cpu))
			return nil
		},
	}
}

func formatFlags(cpu *cpu6502.CPU) string {
	order := []struct {
		name string
		flag cpu6502.StatusFlag
	}{
		{"N", cpu6502.FlagN}, {"V", cpu6502.FlagV}, {"B", cpu6502.FlagB},
		{"D", cpu6502.FlagD}, {"I", cpu6502.FlagI}, {"Z", cpu6502.FlagZ}, {"C", cpu6502.FlagC},
	}
	var sb strings.Builder
	for _, o := range order {
		if cpu.SR.Get(o.flag) == 1 {
			sb.WriteString(o.name)
		} else {
			sb.WriteString(".")
		}
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}

func newMemCmd(mem *cpu6502.Memory) *cobra.Command {
	return &cobra.Command{
		Use:   "mem <addr> <len>",
		Short: "dump a range of memory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := strconv.ParseInt(args[0], 0, 32)
			if err != nil {
				return errors.Wrap(err, "parsing addr")
			}
			length, err := strconv.ParseInt(args[1], 0, 32)
			if err != nil {
				return errors.Wrap(err, "parsing len")
			}
			data, err := mem.ReadRange(int(addr), int(length))
			if err != nil {
				return err
			}
			for i, b := range data {
				if i%16 == 0 {
					if i != 0 {
						fmt.Println()
					}
					fmt.Printf("%#04x: ", int(addr)+i)
				}
				fmt.Printf("%02x ", b)
			}
			fmt.Println()
			return nil
		},
	}
}

func newLoadCmd(mem *cpu6502.Memory) *cobra.Command {
	return &cobra.Command{
		Use:   "load <addr> <byte...>",
		Short: "load raw bytes into memory at addr",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := strconv.ParseInt(args[0], 0, 32)
			if err != nil {
				return errors.Wrap(err, "parsing addr")
			}
			data := make([]byte, 0, len(args)-1)
			for _, a := range args[1:] {
				b, err := strconv.ParseInt(a, 0, 16)
				if err != nil {
					return errors.Wrapf(err, "parsing byte %q", a)
				}
				data = append(data, byte(b))
			}
			if err := mem.Load(int(addr), data); err != nil {
				return err
			}
			fmt.Printf("loaded %d bytes at %#04x\n", len(data), addr)
			return nil
		},
	}
}

func newFileCmd(mem *cpu6502.Memory) *cobra.Command {
	return &cobra.Command{
		Use:   "file <path> [addr]",
		Short: "load a binary file into memory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := 0
			if len(args) == 2 {
				v, err := strconv.ParseInt(args[1], 0, 32)
				if err != nil {
					return errors.Wrap(err, "parsing addr")
				}
				addr = int(v)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			if err := mem.Load(addr, data); err != nil {
				return err
			}
			fmt.Printf("loaded %d bytes from %s at %#04x\n", len(data), args[0], addr)
			return nil
		},
	}
}

func newStepCmd(cpu *cpu6502.CPU) *cobra.Command {
	return &cobra.Command{
		Use:   "step [n]",
		Short: "execute n instructions (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.Wrap(err, "parsing n")
				}
				n = v
			}
			for i := 0; i < n; i++ {
				if cpu.Halted {
					fmt.Println("cpu halted")
					return nil
				}
				if _, err := cpu.Step(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newRunCmd(cpu *cpu6502.CPU) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "run until halted or an error occurs",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cpu.Run()
			fmt.Printf("halted at %#04x after %d cycles\n", cpu.PC.Value(), cpu.CycleCount)
			return err
		},
	}
}

func newPCCmd(cpu *cpu6502.CPU) *cobra.Command {
	return &cobra.Command{
		Use:   "pc <value>",
		Short: "set the program counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 0, 32)
			if err != nil {
				return errors.Wrap(err, "parsing value")
			}
			cpu.PC.Set(int(v))
			return nil
		},
	}
}

func newResetCmd(cpu *cpu6502.CPU) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "reset registers to their power-up state and zero memory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cpu.Reset()
			return nil
		},
	}
}

func newDisasmCmd(cpu *cpu6502.CPU) *cobra.Command {
	return &cobra.Command{
		Use:   "disasm <start> <end>",
		Short: "disassemble a range of memory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseInt(args[0], 0, 32)
			if err != nil {
				return errors.Wrap(err, "parsing start")
			}
			end, err := strconv.ParseInt(args[1], 0, 32)
			if err != nil {
				return errors.Wrap(err, "parsing end")
			}
			lines := cpu6502.Disassemble(cpu, uint16(start), uint16(end))
			for addr := uint16(start); ; addr++ {
				if text, ok := lines[addr]; ok {
					fmt.Println(text)
				}
				if addr == uint16(end) {
					break
				}
			}
			return nil
		},
	}
}

func newDumpCmd(cpu *cpu6502.CPU) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "deep-print full CPU state (debugging aid)",
		RunE: func(cmd *cobra.Command, args []string) error {
			spew.Dump(cpu)
			return nil
		},
	}
}
