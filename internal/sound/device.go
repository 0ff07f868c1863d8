package sound

import (
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// device owns the single oto context. It is created lazily on the first
// entry point that needs to make sound, and once the hardware reports
// ready it pulls the graph renderer forever. If the device cannot be
// opened the engine degrades to a silent pump that still advances the
// audio clock, so scheduling (and everything built on it) keeps working.
type device struct {
	once sync.Once

	mu     sync.Mutex
	player oto.Player
}

func newDevice() *device {
	return &device{}
}

func (d *device) ensure(g *graph) {
	d.once.Do(func() {
		ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
		if err != nil {
			log.Printf("sound: audio device unavailable, running silent: %v", err)
			go silentPump(g)
			return
		}
		go func() {
			<-ready
			p := ctx.NewPlayer(g)
			p.Play()
			d.mu.Lock()
			d.player = p
			d.mu.Unlock()
		}()
	})
}

// silentPump reads the graph at roughly real-time rate so voices are
// rendered and disposed and Now() stays meaningful without a device.
func silentPump(g *graph) {
	const chunk = 50 * time.Millisecond
	buf := make([]byte, SampleRate*int(chunk/time.Millisecond)/1000*8)
	t := time.NewTicker(chunk)
	defer t.Stop()
	for range t.C {
		g.Read(buf)
	}
}
