package tracker

import (
	"fmt"
	"math"

	"github.com/PaesslerAG/jsonpath"
)

// rateEndpoint serves daily reference exchange rates keyed by base currency.
const rateEndpoint = "https://open.er-api.com/v6/latest/"

// LatestRate fetches the current market rate for one unit of the foreign
// currency expressed in the local currency. Responses are cached on disk
// for the day; the rate is informational only and never feeds the engine.
func LatestRate(foreign, local string) (float64, error) {
	addr := rateEndpoint + foreign
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", foreign+"/"+local, err)
	}

	path := "$.rates." + local
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", foreign+"/"+local, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", foreign+"/"+local, path, "not a float", jval)
	}
	return val, nil
}
