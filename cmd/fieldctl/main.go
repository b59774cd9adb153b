// Command fieldctl is a small demo CLI exercising the primefield façade:
// field construction, root-of-unity search, FFT evaluation/interpolation,
// and generic Lagrange interpolation. spec.md treats the CLI as an
// external collaborator of the arithmetic core, not part of it — but a
// demo binary exercising the façade is exactly the ambient surface a
// teacher-style repo carries (see SPEC_FULL.md §6/§9), built the way the
// retrieved pack's xtaci-kcptun teacher-adjacent repo builds its own CLI:
// github.com/urfave/cli for the flag/command surface, github.com/rs/zerolog
// for startup/engine-selection logging, github.com/xyproto/env/v2 for
// environment-variable configuration defaults.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"
	"github.com/xyproto/env/v2"

	"github.com/vybium/primefield/pkg/primefield/engine"
	"github.com/vybium/primefield/pkg/primefield/field"
	"github.com/vybium/primefield/pkg/primefield/polynomial"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

// defaultModulus is 2^128 - 159, the concrete example modulus spec.md §8
// names for its testable scenarios.
func defaultModulus() string {
	p := new(big.Int).Lsh(big.NewInt(1), 128)
	p.Sub(p, big.NewInt(159))
	return p.String()
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	app := cli.NewApp()
	app.Name = "fieldctl"
	app.Usage = "exercise the primefield GF(p) arithmetic façade"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "modulus",
			Value:  env.Str("FIELDCTL_MODULUS", defaultModulus()),
			Usage:  "128-bit prime modulus, decimal",
			EnvVar: "FIELDCTL_MODULUS",
		},
		cli.BoolFlag{
			Name:   "accelerated",
			Usage:  "dispatch through the simulated off-host engine instead of the in-process one",
			EnvVar: "FIELDCTL_ACCELERATED",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "root-of-unity",
			Usage: "search for a root of unity of the given order",
			Flags: []cli.Flag{
				cli.Uint64Flag{Name: "order", Value: 4, Usage: "subgroup order, must be a power of two"},
			},
			Action: func(c *cli.Context) error {
				fc, err := buildFacade(c)
				if err != nil {
					return err
				}
				order := c.Uint64("order")
				w, err := fc.Field.GetRootOfUnity(order)
				if err != nil {
					return err
				}
				log.Info().Uint64("order", order).Str("root", w.String()).Msg("found root of unity")
				fmt.Println(w.String())
				return nil
			},
		},
		{
			Name:  "fft",
			Usage: "evaluate a small hardcoded polynomial at the n-th roots of unity and invert it back",
			Flags: []cli.Flag{
				cli.Uint64Flag{Name: "order", Value: 4, Usage: "domain size, must be a power of two"},
			},
			Action: func(c *cli.Context) error {
				fc, err := buildFacade(c)
				if err != nil {
					return err
				}
				order := c.Uint64("order")
				w, err := fc.Field.GetRootOfUnity(order)
				if err != nil {
					return err
				}
				roots := fc.Field.GetPowerCycle(w)

				coeffs := make([]field.Element, order)
				for i := range coeffs {
					coeffs[i] = fc.Field.NewElementFromUint64(uint64(i + 1))
				}
				poly := polynomial.New(fc.Field, coeffs)

				values, err := polynomial.EvalPolyAtRoots(fc.Field, poly, roots)
				if err != nil {
					return err
				}
				back, err := polynomial.InterpolateRoots(fc.Field, roots, values)
				if err != nil {
					return err
				}

				log.Info().Int("domain", len(roots)).Msg("fft round trip complete")
				for i, v := range back {
					fmt.Printf("coeff[%d] = %s\n", i, v.String())
				}
				return nil
			},
		},
		{
			Name:  "interpolate",
			Usage: "interpolate the scenario points from spec.md §8 (2,4) (3,9) (5,25)",
			Action: func(c *cli.Context) error {
				fc, err := buildFacade(c)
				if err != nil {
					return err
				}
				xs := []field.Element{
					fc.Field.NewElementFromUint64(2),
					fc.Field.NewElementFromUint64(3),
					fc.Field.NewElementFromUint64(5),
				}
				ys := []field.Element{
					fc.Field.NewElementFromUint64(4),
					fc.Field.NewElementFromUint64(9),
					fc.Field.NewElementFromUint64(25),
				}
				p, err := polynomial.Interpolate(fc.Field, xs, ys)
				if err != nil {
					return err
				}
				log.Info().Int("degree", p.Degree()).Msg("interpolation complete")
				for i, c := range p.Coefficients() {
					fmt.Printf("coeff[%d] = %s\n", i, c.String())
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("fieldctl failed")
		os.Exit(1)
	}
}

// buildFacade constructs the engine.Facade for the modulus/accelerated
// flags shared by every subcommand.
func buildFacade(c *cli.Context) (*engine.Facade, error) {
	modulusStr := c.GlobalString("modulus")
	if modulusStr == "" {
		modulusStr = c.String("modulus")
	}
	p, ok := new(big.Int).SetString(modulusStr, 10)
	if !ok {
		return nil, fmt.Errorf("invalid modulus %q", modulusStr)
	}

	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(p, mask64).Uint64()
	hi := new(big.Int).Rsh(p, 64).Uint64()
	modulus := wideint.Uint128{Lo: lo, Hi: hi}

	accelerated := c.GlobalBool("accelerated") || c.Bool("accelerated")
	log.Info().Str("modulus", p.String()).Bool("accelerated", accelerated).Msg("constructing field")

	return engine.NewField(modulus, engine.Options{UseAccelerated: accelerated}), nil
}
