package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/firewall/internal/game"
)

// Expected judgement of the recorded run against the compiled-in beat map.
const (
	RunHits   = 27
	RunMisses = 5
)

// GetRun returns a recorded run on the compiled-in beat map. Beats 10 to 14
// land untouched, which engages assist, and beat 15 is tapped 250ms late.
func GetRun() ([]game.Input, error) {
	var inputs []game.Input
	if err := json.Unmarshal([]byte(run), &inputs); nil != err {
		return nil, err
	}
	return inputs, nil
}
