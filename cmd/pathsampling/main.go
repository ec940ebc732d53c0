/*
 * main.go, part of goPaths.
 *
 * Copyright 2026 Marcela Herrera <mherrera{at}quimDOTusachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goPaths is developed at the theoretical chemistry group,
 * Universidad de Santiago, Chile.
 *
 */

//pathsampling runs a path-sampling calculation described by a YAML
//setup file.
//
//	pathsampling run <setup.yml> [-o steps.stz.zst] [-n 10000] [-scheme default] [-full]
//	pathsampling equilibrate <setup.yml> [-o equil.stz.zst] [-d 3]
//
//run performs n Monte Carlo steps and streams every step to the output
//log. equilibrate decorrelates the initial paths: it runs until the
//active path of every ensemble has been fully regenerated by shooting
//moves d times.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mherrera/gopaths/scheme"
	"github.com/mherrera/gopaths/setup"
	"github.com/mherrera/gopaths/steps"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pathsampling run <setup.yml> [-o out.stz.zst] [-n steps] [-scheme name] [-full]")
	fmt.Fprintln(os.Stderr, "       pathsampling equilibrate <setup.yml> [-o equil.stz.zst] [-d rounds]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}
	mode := os.Args[1]
	setupFile := os.Args[2]

	fl := flag.NewFlagSet("pathsampling", flag.ExitOnError)
	out := fl.String("o", "steps.stz.zst", "output step log, compression by extension (.zst, .gz, .fl)")
	n := fl.Int("n", 10000, "number of Monte Carlo steps (run)")
	rounds := fl.Int("d", 3, "full path regenerations per ensemble (equilibrate)")
	full := fl.Bool("full", false, "store the full path of every step, not just its summary")
	schemeName := fl.String("scheme", "", "override the move scheme of the setup file (default, shooting-only)")
	fl.Parse(os.Args[3:])

	log.Printf("Reading setup file `%s`\n", setupFile)
	c, err := setup.New(setupFile)
	if err != nil {
		log.Fatal(fmt.Errorf("setup: %w", err))
	}
	if *schemeName != "" {
		c.Scheme = setup.SchemeKind(*schemeName)
	}

	log.Println("Building the system and generating the initial paths")
	sys, err := c.Build()
	if err != nil {
		log.Fatal(fmt.Errorf("build: %w", err))
	}

	W, err := steps.NewWriter(*out)
	if err != nil {
		log.Fatal(err)
	}
	record := func(step int, res scheme.Result, set *scheme.SampleSet) error {
		return W.WNext(setup.Record(step, res, set, sys.CV, *full))
	}

	switch mode {
	case "run":
		log.Printf("Running %d Monte Carlo steps\n", *n)
		if err := sys.Sampler.Run(*n, record); err != nil {
			log.Fatal(err)
		}
	case "equilibrate":
		log.Printf("Equilibrating: %d full path regenerations per ensemble\n", *rounds)
		taken, err := sys.Sampler.Equilibrate(*rounds, 5000*(*rounds)*sys.Sampler.Set().Len(), record)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Equilibrated after %d steps\n", taken)
	default:
		usage()
	}

	if err := W.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %d steps to `%s`\n", W.Wrote(), *out)
	sys.Scheme.Summary(os.Stdout)
	log.Println("Done")
}
