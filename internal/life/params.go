package life

import (
	"strconv"

	"lifefade/internal/core"
)

// Parameters describes the grid and its last generation for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	st := e.stats
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Value: strconv.Itoa(e.geom.W) + "x" + strconv.Itoa(e.geom.H)},
				{Key: "workers", Label: "Bands", Value: strconv.Itoa(len(e.bands))},
				{Key: "update_every", Label: "Update every", Value: strconv.Itoa(e.opts.UpdateEvery)},
				{Key: "fade_grades", Label: "Fade grades", Value: strconv.Itoa(e.opts.FadeGrades)},
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.FormatUint(st.Generation, 10)},
				{Key: "live", Label: "Live", Value: strconv.Itoa(st.Live)},
				{Key: "births", Label: "Births", Value: strconv.Itoa(st.Births)},
				{Key: "deaths", Label: "Deaths", Value: strconv.Itoa(st.Deaths)},
			},
		},
	}}
}
