// Command gs1engine is a thin demonstrative front-end over the engine:
// parse/validate an element string, DL URI, or bracketed AI data, and
// generate a canonical DL URI back out of one. It is not a barcode
// renderer or a production integration point — see the engine package
// for that.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gs1 "github.com/gs1-org/syntax-engine"
	"github.com/gs1-org/syntax-engine/ascii"
)

var (
	permitUnknownAIs bool
	domain           string
)

func newEngine() *gs1.Engine {
	cfg := gs1.NewConfig()
	cfg.SetBool("permitUnknownAIs", permitUnknownAIs)
	return gs1.NewEngine(gs1.DefaultDictionary(), cfg)
}

func printParsed(buf *gs1.Buffer) {
	for _, p := range buf.Parsed() {
		if p.Kind != gs1.KindAIValue {
			continue
		}
		fmt.Printf("%s%s%s %s%s%s\n",
			ascii.DefaultTheme.AICode, string(p.AI(buf)), ascii.Reset,
			ascii.DefaultTheme.Value, string(p.Value(buf)), ascii.Reset)
	}
}

func fail(format string, args ...any) error {
	return fmt.Errorf("%s", ascii.Color(ascii.DefaultTheme.Error, format, args...))
}

func newParseCmd() *cobra.Command {
	var form string
	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Parse a bracketed, unbracketed, or DL URI element string and print its AI/value pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			input := []byte(args[0])

			var buf *gs1.Buffer
			var err error
			switch form {
			case "bracketed":
				buf, err = e.ParseBracketed(input)
			case "unbracketed":
				buf, err = e.ParseUnbracketed(input)
			case "dluri":
				buf, err = e.ParseDLURI(input)
			default:
				return fail("unknown --form %q (want bracketed, unbracketed, or dluri)", form)
			}
			if err != nil {
				return fail("%s", err)
			}
			printParsed(buf)
			return nil
		},
	}
	cmd.Flags().StringVar(&form, "form", "bracketed", "input form: bracketed, unbracketed, or dluri")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <bracketed-element-string>",
		Short: "Parse a bracketed element string and render it as a canonical DL URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			buf, err := e.ParseBracketed([]byte(args[0]))
			if err != nil {
				return fail("%s", err)
			}
			uri, err := e.GenerateDLURI(buf, domain)
			if err != nil {
				return fail("%s", err)
			}
			fmt.Println(string(uri))
			return nil
		},
	}
	cmd.Flags().StringVar(&domain, "domain", "id.gs1.org", "host to root the generated DL URI at")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var form string
	cmd := &cobra.Command{
		Use:   "validate <input>",
		Short: "Parse an element string and report whether it passes every cross-AI validator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			input := []byte(args[0])

			var err error
			switch form {
			case "bracketed":
				_, err = e.ParseBracketed(input)
			case "unbracketed":
				_, err = e.ParseUnbracketed(input)
			case "dluri":
				_, err = e.ParseDLURI(input)
			default:
				return fail("unknown --form %q (want bracketed, unbracketed, or dluri)", form)
			}
			if err != nil {
				fmt.Println(ascii.Color(ascii.DefaultTheme.Error, "invalid: %s", err))
				os.Exit(1)
			}
			fmt.Println(ascii.Color(ascii.DefaultTheme.Success, "valid"))
			return nil
		},
	}
	cmd.Flags().StringVar(&form, "form", "bracketed", "input form: bracketed, unbracketed, or dluri")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "gs1engine",
		Short: "Parse, validate, and generate GS1 element strings and Digital Link URIs",
	}
	root.PersistentFlags().BoolVar(&permitUnknownAIs, "permit-unknown-ais", false, "accept AIs absent from the embedded dictionary")

	root.AddCommand(newParseCmd(), newGenerateCmd(), newValidateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
