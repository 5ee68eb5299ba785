// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/babel-tcc/translations-validator/runner"

	"github.com/fatih/color"
)

const bannerWidth = 60

// Printer writes the human readable progress report of a validation run.
type Printer struct {
	out   io.Writer
	title string

	ok   *color.Color
	fail *color.Color
	bold *color.Color
}

// NewPrinter returns a Printer writing to out. Colors are only used when
// useColor is set and the color library detects a terminal.
func NewPrinter(out io.Writer, title string, useColor bool) *Printer {
	p := &Printer{
		out:   out,
		title: title,
		ok:    color.New(color.FgGreen, color.Bold),
		fail:  color.New(color.FgRed, color.Bold),
		bold:  color.New(color.Bold),
	}

	if !useColor {
		p.ok.DisableColor()
		p.fail.DisableColor()
		p.bold.DisableColor()
	}

	return p
}

func (p *Printer) banner() {
	fmt.Fprintln(p.out, strings.Repeat("=", bannerWidth))
}

// Start prints the report header.
func (p *Printer) Start() {
	p.banner()
	fmt.Fprintf(p.out, "  Validacao de traducoes — %s\n", p.title)
	p.banner()
	fmt.Fprintln(p.out)
}

// Stage prints the outcome of a single stage followed by a blank line.
func (p *Printer) Stage(res runner.StageResult) {
	fmt.Fprintf(p.out, "[%d/%d] %s...\n", res.Number, runner.StageCount, res.Title)

	if res.Passed() {
		fmt.Fprintf(p.out, "  %s — %s\n", p.ok.Sprint("OK"), res.Summary)
	} else {
		fmt.Fprintf(p.out, "  %s:\n", p.fail.Sprint("FALHOU"))
		for _, f := range res.Findings {
			fmt.Fprintf(p.out, "  %s\n", f)
		}
	}

	fmt.Fprintln(p.out)
}

// Abort prints the notice shown when syntax errors stop the run.
func (p *Printer) Abort() {
	fmt.Fprintln(p.out, "Abortando validacoes restantes devido a erros de sintaxe.")
}

// Finish prints the final summary.
func (p *Printer) Finish(res *runner.Result) {
	p.banner()
	if res.Failed() {
		fmt.Fprintf(p.out, "  %s: %d erro(s) encontrado(s)\n", p.fail.Sprint("RESULTADO"), res.Total())
	} else {
		fmt.Fprintf(p.out, "  %s: Todas as validacoes passaram!\n", p.bold.Sprint("RESULTADO"))
	}
	p.banner()
}
