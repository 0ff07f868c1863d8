// Command top10audio plays the game's full sound palette from the
// terminal: background music, every named effect, and the graded reveal
// tiers. Handy for tuning the synthesis without clicking through the UI.
package main

import (
	"log"
	"time"

	"github.com/lukasbinau/Top10Game/internal/sound"
)

func main() {
	log.SetFlags(0)

	eng := sound.NewEngine()

	log.Println("starting music")
	eng.StartMusic()
	time.Sleep(4 * time.Second)

	for _, name := range []string{
		"click",
		"team_added",
		"team_removed",
		"round_start",
		"guess_submitted",
		"skip",
	} {
		log.Printf("effect: %s", name)
		eng.Play(name)
		time.Sleep(900 * time.Millisecond)
	}

	for _, score := range []int{12, 8, 3, 0} {
		log.Printf("graded result: score %d", score)
		eng.PlayGradedResult(score)
		time.Sleep(2 * time.Second)
	}

	log.Println("muting for a bar")
	eng.ToggleMute()
	time.Sleep(2 * time.Second)
	eng.ToggleMute()
	time.Sleep(2 * time.Second)

	log.Println("stopping music")
	eng.StopMusic()
	time.Sleep(1 * time.Second)
}
