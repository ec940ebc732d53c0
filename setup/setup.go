/*
 * setup.go, part of goPaths.
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

//Package setup reads a whole path-sampling calculation from a YAML
//file: potential, integrator, states, network, move scheme and the
//initial paths, and hands back a sampler ready to run.
package setup

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	paths "github.com/mherrera/gopaths"
	"github.com/mherrera/gopaths/scheme"
	"github.com/mherrera/gopaths/steps"
	"github.com/mherrera/gopaths/toys"
)

//Potential names one of the built-in 2D toy surfaces.
type Potential string

//The built-in surfaces.
var (
	PDoubleWell Potential = "double-well"
	PTwoChannel Potential = "two-channel"
)

//NetworkKind selects the kind of transition network.
type NetworkKind string

//The accepted network kinds.
var (
	NTPS NetworkKind = "tps"
	NTIS NetworkKind = "tis"
)

//SchemeKind selects a pre-composed move scheme.
type SchemeKind string

//The accepted schemes. SDefault is shooting plus path reversal, plus
//replica exchange on multi-interface networks. SShooting is one-way
//shooting alone.
var (
	SDefault  SchemeKind = "default"
	SShooting SchemeKind = "shooting-only"
)

//SelectorKind selects the shooting-point selector.
type SelectorKind string

//The accepted selectors.
var (
	SelUniform  SelectorKind = "uniform"
	SelGaussian SelectorKind = "gaussian"
)

//State is a stable state defined as a half-open interval of the
//collective variable.
type State struct {
	Name string  `yaml:"name"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

//Cfg holds everything a path-sampling run needs, as read from a YAML
//setup file. It can also be filled by hand; Check validates it either
//way.
type Cfg struct {
	//Potential is the toy surface to sample on
	Potential Potential `yaml:"potential"`

	//Langevin integrator parameters
	Dt    float64 `yaml:"dt"`
	Gamma float64 `yaml:"gamma"`
	KT    float64 `yaml:"kt"`
	Mass  float64 `yaml:"mass"`

	//MaxLength is the hard cap on path length, in frames
	MaxLength int `yaml:"maxLength"`

	//CVAxis is the coordinate the collective variable reports,
	//0 for x, 1 for y
	CVAxis int `yaml:"cvAxis"`

	//States are the stable states, as intervals of the CV
	States []State `yaml:"states"`

	//Network is the network kind, tps or tis
	Network NetworkKind `yaml:"network"`

	//Initial and Final name the states of a TPS transition, or the
	//A and B states of a TIS network
	Initial string `yaml:"initialState"`
	Final   string `yaml:"finalState"`

	//Interfaces are the interface lambdas of a TIS network, strictly
	//increasing
	Interfaces []float64 `yaml:"interfaces"`

	//Scheme is the move scheme, default or shooting-only
	Scheme SchemeKind `yaml:"scheme"`

	//Selector picks shooting points, uniform or gaussian
	Selector SelectorKind `yaml:"selector"`

	//SelCenter and SelAlpha parametrize the gaussian selector
	SelCenter float64 `yaml:"selCenter"`
	SelAlpha  float64 `yaml:"selAlpha"`

	//Seed seeds every random stream of the run
	Seed int64 `yaml:"seed"`

	//Start is the point the initial trajectories are shot from. It
	//must lie inside the initial state
	Start []float64 `yaml:"start"`

	//Tries caps the attempts at generating each initial trajectory
	Tries int `yaml:"tries"`

	//BootstrapKT, if nonzero, is a (usually hotter) temperature used
	//only while generating the initial trajectories
	BootstrapKT float64 `yaml:"bootstrapKT"`
}

//New opens and decodes the given YAML setup file and validates it
//through Check.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var c Cfg
	dec := yaml.NewDecoder(bufio.NewReader(f))
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return &c, nil
}

//Check fills the defaults in and returns an error on the first field
//that doesn't meet the requirements.
func (c *Cfg) Check() error {
	if c.Potential == "" {
		c.Potential = PDoubleWell
	}
	if c.Potential != PDoubleWell && c.Potential != PTwoChannel {
		return fmt.Errorf("unknown potential %q", c.Potential)
	}
	if c.Dt <= 0 || c.Gamma <= 0 || c.KT <= 0 || c.Mass <= 0 {
		return fmt.Errorf("dt, gamma, kt and mass must all be positive")
	}
	if c.MaxLength == 0 {
		c.MaxLength = 10000
	}
	if c.MaxLength < 2 {
		return fmt.Errorf("maxLength must be at least 2")
	}
	if c.CVAxis != 0 && c.CVAxis != 1 {
		return fmt.Errorf("cvAxis must be 0 or 1")
	}
	if len(c.States) < 2 {
		return fmt.Errorf("at least 2 states are needed")
	}
	for _, s := range c.States {
		if s.Name == "" || s.Min >= s.Max {
			return fmt.Errorf("state %q: empty name or backwards interval", s.Name)
		}
	}
	if c.Network == "" {
		c.Network = NTPS
	}
	if c.Network != NTPS && c.Network != NTIS {
		return fmt.Errorf("unknown network kind %q", c.Network)
	}
	if c.Initial == "" || c.Final == "" {
		return fmt.Errorf("initialState and finalState are both required")
	}
	if c.stateByName(c.Initial) == nil || c.stateByName(c.Final) == nil {
		return fmt.Errorf("initialState and finalState must name declared states")
	}
	if c.Network == NTIS {
		if len(c.Interfaces) == 0 {
			return fmt.Errorf("a tis network needs at least one interface")
		}
		for i := 1; i < len(c.Interfaces); i++ {
			if c.Interfaces[i] <= c.Interfaces[i-1] {
				return fmt.Errorf("interfaces must be strictly increasing")
			}
		}
	}
	if c.Scheme == "" {
		c.Scheme = SDefault
	}
	if c.Scheme != SDefault && c.Scheme != SShooting {
		return fmt.Errorf("unknown scheme %q", c.Scheme)
	}
	if c.Selector == "" {
		c.Selector = SelUniform
	}
	if c.Selector != SelUniform && c.Selector != SelGaussian {
		return fmt.Errorf("unknown selector %q", c.Selector)
	}
	if c.Selector == SelGaussian && c.SelAlpha <= 0 {
		return fmt.Errorf("the gaussian selector needs a positive selAlpha")
	}
	if len(c.Start) != 2 {
		return fmt.Errorf("start must be a 2D point")
	}
	if c.Tries == 0 {
		c.Tries = 2000
	}
	if c.Tries < 1 {
		return fmt.Errorf("tries must be positive")
	}
	if c.BootstrapKT < 0 {
		return fmt.Errorf("bootstrapKT cannot be negative")
	}
	return nil
}

func (c *Cfg) stateByName(name string) *State {
	for i := range c.States {
		if c.States[i].Name == name {
			return &c.States[i]
		}
	}
	return nil
}

//System is a fully assembled calculation: every piece the CLI and the
//analysis need, already wired together.
type System struct {
	CV      *paths.CV
	Network paths.Network
	Engine  *toys.Engine
	Scheme  *scheme.Scheme
	Sampler *scheme.Sampler
}

func (c *Cfg) pes() toys.Sum {
	if c.Potential == PTwoChannel {
		return toys.TwoChannel()
	}
	return toys.DoubleWell()
}

func (c *Cfg) engine(kt float64) (*toys.Engine, error) {
	integ, err := toys.NewLangevin(c.pes(), c.Dt, c.Gamma, kt, c.Mass)
	if err != nil {
		return nil, err
	}
	return toys.NewEngine(integ, c.MaxLength)
}

func (c *Cfg) volume(cv *paths.CV, name string) (paths.Volume, error) {
	s := c.stateByName(name)
	if s == nil {
		return nil, fmt.Errorf("no state named %q", name)
	}
	return paths.NewCVRange(s.Name, cv, s.Min, s.Max)
}

func (c *Cfg) network(cv *paths.CV) (paths.Network, error) {
	a, err := c.volume(cv, c.Initial)
	if err != nil {
		return nil, err
	}
	b, err := c.volume(cv, c.Final)
	if err != nil {
		return nil, err
	}
	if c.Network == NTIS {
		return paths.NewTISNetwork(a, b, cv, c.Interfaces)
	}
	return paths.NewTPSNetwork([]paths.Volume{a}, []paths.Volume{b})
}

func (c *Cfg) selector(cv *paths.CV) scheme.Selector {
	if c.Selector == SelGaussian {
		return &scheme.GaussianBias{CV: cv, Center: c.SelCenter, Alpha: c.SelAlpha}
	}
	return scheme.Uniform{}
}

func (c *Cfg) strategies(cv *paths.CV, n paths.Network) []scheme.Strategy {
	s := []scheme.Strategy{scheme.OneWayShooting{Selector: c.selector(cv)}}
	if c.Scheme == SShooting {
		return s
	}
	s = append(s, scheme.Reversal{})
	if tis, ok := n.(*paths.TISNetwork); ok && len(tis.Interfaces()) > 1 {
		s = append(s, scheme.RepEx{})
	}
	return s
}

//Build assembles the whole calculation from the configuration: engine,
//network, scheme, the initial path for every ensemble and a seeded
//sampler. One full transition path is generated first and used to seed
//every ensemble; on a TIS network an A->B path belongs to all of them.
func (c *Cfg) Build() (*System, error) {
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	cv := paths.Coordinate("cv", c.CVAxis)
	eng, err := c.engine(c.KT)
	if err != nil {
		return nil, err
	}
	net, err := c.network(cv)
	if err != nil {
		return nil, err
	}
	builder := scheme.NewBuilder(net, eng)
	sch, err := builder.Build(c.strategies(cv, net)...)
	if err != nil {
		return nil, err
	}
	set, err := c.seed(cv, net, eng)
	if err != nil {
		return nil, err
	}
	sys := &System{
		CV:      cv,
		Network: net,
		Engine:  eng,
		Scheme:  sch,
		Sampler: scheme.NewSampler(sch, set, c.Seed),
	}
	return sys, nil
}

//seed generates one full transition path with the (possibly hotter)
//bootstrap engine and assigns it to every ensemble of the network.
func (c *Cfg) seed(cv *paths.CV, net paths.Network, eng *toys.Engine) (*scheme.SampleSet, error) {
	boot := eng
	if c.BootstrapKT > 0 {
		var err error
		boot, err = c.engine(c.BootstrapKT)
		if err != nil {
			return nil, err
		}
	}
	a, err := c.volume(cv, c.Initial)
	if err != nil {
		return nil, err
	}
	b, err := c.volume(cv, c.Final)
	if err != nil {
		return nil, err
	}
	trans, err := paths.NewTPSEnsemble("seed/"+a.Name()+"->"+b.Name(), a, b, net.AllStates())
	if err != nil {
		return nil, err
	}
	from := paths.NewSnapshot(c.Start, make([]float64, len(c.Start)))
	if !a.Contains(from) {
		return nil, fmt.Errorf("the start point must lie inside state %s", a.Name())
	}
	rng := rand.New(rand.NewSource(c.Seed))
	T, err := scheme.InitialTrajectory(boot, trans, from, c.Tries, rng)
	if err != nil {
		return nil, fmt.Errorf("generating the initial path: %w", err)
	}
	set := scheme.NewSampleSet()
	for _, e := range net.PathEnsembles() {
		if err := set.Add(e, T.Copy()); err != nil {
			return nil, fmt.Errorf("seeding ensemble %s: %w", e.Name(), err)
		}
	}
	return set, nil
}

//Record turns the outcome of one Monte Carlo step into a loggable
//step. The recorded length and lambda-max are those of the active path
//of the move's first ensemble, after the move. Set full to also store
//the frame positions.
func Record(n int, res scheme.Result, set *scheme.SampleSet, cv *paths.CV, full bool) *steps.Step {
	s := &steps.Step{
		N:         n,
		Mover:     res.Mover,
		Ensembles: res.Ensembles,
		Accepted:  res.Accepted,
	}
	if len(res.Ensembles) > 0 {
		T := set.Path(res.Ensembles[0])
		s.Length = T.Len()
		s.LambdaMax = T.CVMax(cv)
		if full {
			s.Path = T.Positions()
		}
	}
	return s
}
