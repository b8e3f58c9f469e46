// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/emer/emergent/params"
)

// ParamSets are named parameter sets that can be applied on top of the
// configuration.  Base restates the defaults; the others select a
// synapse regime or a faster neuron.  All use the "Sim" sheet, whose
// selectors target the Config type.
var ParamSets = params.Sets{
	{Name: "Base", Desc: "these are the default params", Sheets: params.Sheets{
		"Sim": &params.Sheet{
			{Sel: "Config", Desc: "depressing synapse, standard LIF",
				Params: params.Params{
					"Config.TM.Params.TauFInv":    "20",
					"Config.TM.Params.TauSInv":    "50",
					"Config.TM.Params.TauDInv":    "1.3333334",
					"Config.TM.Params.U":          "0.45",
					"Config.LIF.Params.TauSynInv": "200",
					"Config.LIF.Params.TauMemInv": "100",
					"Config.LIF.Params.VTh":       "1",
				}},
		},
	}},
	{Name: "Facilitating", Desc: "facilitation dominates: weak initial release that grows over a burst", Sheets: params.Sheets{
		"Sim": &params.Sheet{
			{Sel: "Config", Desc: "slow facilitation decay, fast resource recovery",
				Params: params.Params{
					"Config.TM.Params.TauFInv": "1.3333334",
					"Config.TM.Params.TauDInv": "20",
					"Config.TM.Params.U":       "0.15",
				}},
		},
	}},
	{Name: "Depressing", Desc: "depression dominates: strong initial release that fades over a burst", Sheets: params.Sheets{
		"Sim": &params.Sheet{
			{Sel: "Config", Desc: "fast facilitation decay, slow resource recovery",
				Params: params.Params{
					"Config.TM.Params.TauFInv": "20",
					"Config.TM.Params.TauDInv": "1.3333334",
					"Config.TM.Params.U":       "0.45",
				}},
		},
	}},
	{Name: "FastMembrane", Desc: "halves the membrane time constant", Sheets: params.Sheets{
		"Sim": &params.Sheet{
			{Sel: "Config", Desc: "5 msec membrane",
				Params: params.Params{
					"Config.LIF.Params.TauMemInv": "200",
				}},
		},
	}},
}

// ApplyParams applies the "Sim" sheet of the named parameter set to cfg.
// If setMsg is true, a message is logged for each parameter set.
func ApplyParams(cfg *Config, setNm string, setMsg bool) error {
	pset, err := ParamSets.SetByNameTry(setNm)
	if err != nil {
		return err
	}
	simp, ok := pset.Sheets["Sim"]
	if !ok {
		return fmt.Errorf("param set %s has no Sim sheet", setNm)
	}
	simp.Apply(cfg, setMsg)
	cfg.Update()
	return nil
}
