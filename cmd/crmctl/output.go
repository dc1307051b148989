package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// confirmDelete pregunta antes de borrar; --yes la omite. Solo "y"/"yes" confirma.
func confirmDelete(c *cli.Context, kind string) bool {
	if c.Bool("yes") {
		return true
	}
	fmt.Fprintf(c.App.Writer, "Are you sure you want to delete this %s? [y/N] ", kind)
	answer, _ := bufio.NewReader(c.App.Reader).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	fmt.Fprintln(c.App.Writer, "cancelado")
	return false
}

var yesFlag = &cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "no pedir confirmación"}

func requireArg(c *cli.Context, name string) (string, error) {
	v := strings.TrimSpace(c.Args().First())
	if v == "" {
		return "", fmt.Errorf("falta el argumento %s", name)
	}
	return v, nil
}
