// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/ocs/curated"
	"github.com/jetsetilly/ocs/digest"
	"github.com/jetsetilly/ocs/environment"
	"github.com/jetsetilly/ocs/hardware/chipset"
	"github.com/jetsetilly/ocs/hardware/chipset/agnus"
	"github.com/jetsetilly/ocs/hardware/chipset/copper"
	"github.com/jetsetilly/ocs/hardware/chipset/paula/audio"
	"github.com/jetsetilly/ocs/hardware/chipset/registers"
	"github.com/jetsetilly/ocs/hardware/clocks"
	"github.com/jetsetilly/ocs/hardware/memory"
	"github.com/jetsetilly/ocs/hostaudio"
	"github.com/jetsetilly/ocs/hostserial"
	"github.com/jetsetilly/ocs/logger"
	"github.com/jetsetilly/ocs/modalflag"
	"github.com/jetsetilly/ocs/paths"
	"github.com/jetsetilly/ocs/performance"
	"github.com/jetsetilly/ocs/performance/limiter"
	"github.com/jetsetilly/ocs/prefs"
	"github.com/jetsetilly/ocs/sampleload"
	"github.com/jetsetilly/ocs/scripting"
	"github.com/jetsetilly/ocs/statsview"
	"github.com/jetsetilly/ocs/tracker"
	"github.com/jetsetilly/ocs/version"
	"github.com/jetsetilly/ocs/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	// ctrl-c ends the emulation at the end of the current frame
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	os.Exit(launch(md, intChan))
}

// launch parses the top level mode and runs it. The return value is the exit
// status of the program.
func launch(md *modalflag.Modes, quit <-chan os.Signal) int {
	md.NewMode()
	md.AddSubModes("RUN", "SERIAL", "DISASM", "SCRIPT", "DUMP", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(md.Output, version.Get())
		return 0
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, quit)

	case "SERIAL":
		err = serial(md, quit)

	case "DISASM":
		err = disasm(md)

	case "SCRIPT":
		err = script(md)

	case "DUMP":
		err = dump(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags shared by every mode that creates a chipset
type common struct {
	tv    *string
	ecs   *bool
	prefs *string
	log   *bool
	load  *uint32
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		tv:    md.AddChoice("tv", "", []string{"PAL", "NTSC"}, "television standard"),
		ecs:   md.AddBool("ecs", false, "emulate the ECS revision of Agnus"),
		prefs: md.AddString("prefs", "", "preferences to apply (eg. \"chipset.blitter.accuracy::0; chipset.randstate::true\")"),
		log:   md.AddBool("log", false, "echo the log to stdout"),
		load:  md.AddAddress("load", 0, "chip RAM address at which to load the image"),
	}
}

// create the chipset according to the common flags. the image file is loaded
// into chip RAM if it is not empty
func (c *common) chipset(md *modalflag.Modes, image string) (*chipset.Chipset, error) {
	if *c.log {
		logger.SetEcho(md.Output, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil, nil)
	if *c.prefs != "" {
		if unused := prefs.PopCommandLineStack(); err == nil && unused != "" {
			err = curated.Errorf("unrecognised preferences: %s", unused)
		}
	}
	if err != nil {
		return nil, err
	}

	if *c.tv != "" {
		if err := env.Prefs.TV.Set(*c.tv); err != nil {
			return nil, err
		}
	}
	if *c.ecs {
		if err := env.Prefs.Revision.Set("ECS"); err != nil {
			return nil, err
		}
	}

	mem, err := memory.NewChipRAM(memory.DefaultSize)
	if err != nil {
		return nil, err
	}

	if image != "" {
		f, err := os.Open(image)
		if err != nil {
			return nil, curated.Errorf("image: %v", err)
		}
		defer f.Close()

		n, err := mem.Load(f, *c.load)
		if err != nil {
			return nil, curated.Errorf("image: %v", err)
		}
		logger.Logf(env, "ocs", "loaded %d bytes at $%06x", n, *c.load)
	}

	return chipset.NewChipset(env, mem)
}

func poke(cs *chipset.Chipset, reg registers.Register, value uint16) {
	cs.PokeCustom16(0xdff000|uint32(reg), value)
}

// point the copper at the list and enable copper DMA
func startCopper(cs *chipset.Chipset, addr uint32) {
	poke(cs, registers.COP1LCH, uint16(addr>>16))
	poke(cs, registers.COP1LCL, uint16(addr))
	poke(cs, registers.COPJMP1, 0)
	poke(cs, registers.DMACON, agnus.SETCLR|agnus.DMAEN|agnus.COPEN)
}

// load the sample file into chip RAM and play it on the channel
func playSample(cs *chipset.Chipset, filename string, channel int, addr uint32) error {
	if channel < 0 || channel > 3 {
		return curated.Errorf("sample: no audio channel %d", channel)
	}

	ntsc := cs.Agnus.Lines() == agnus.LinesNTSC

	s, err := sampleload.Load(logger.Allow, filename)
	if err != nil {
		return err
	}
	s = sampleload.Fit(ntsc, s)

	words, err := sampleload.Install(cs.Mem, addr, s)
	if err != nil {
		return err
	}

	base := registers.AudioBase(channel)
	poke(cs, base+registers.AUDxLCH, uint16(addr>>16))
	poke(cs, base+registers.AUDxLCL, uint16(addr))
	poke(cs, base+registers.AUDxLEN, words)
	poke(cs, base+registers.AUDxPER, sampleload.Period(ntsc, s.Rate))
	poke(cs, base+registers.AUDxVOL, 64)
	poke(cs, registers.DMACON, agnus.SETCLR|agnus.DMAEN|agnus.AUD0EN<<channel)

	return nil
}

// newLimiter returns a limiter that keeps the emulation running at the speed
// of the real hardware
func newLimiter(cs *chipset.Chipset) (*limiter.Limiter, error) {
	return limiter.NewLimiter(performance.HardwareFPS(cs))
}

func interrupted(quit <-chan os.Signal) bool {
	select {
	case <-quit:
		return true
	default:
	}
	return false
}

func run(md *modalflag.Modes, quit <-chan os.Signal) error {
	md.NewMode()

	c := addCommon(md)
	frames := md.AddInt("frames", 50, "number of frames to run. zero runs until interrupted")
	cop := md.AddAddress("copper", 0, "start the copper at the address")
	wav := md.AddString("wav", "", "record audio to wav file")
	sample := md.AddString("sample", "", "play a wav or mp3 file")
	channel := md.AddInt("channel", 0, "audio channel used to play the sample")
	sampleAddr := md.AddAddress("sampleaddr", 0x40000, "chip RAM address of the sample")
	live := md.AddBool("audio", false, "play audio through the sound device")
	track := md.AddBool("tracker", false, "list audio register changes")
	digests := md.AddBool("digest", false, "print digests of the audio output and chip RAM")
	state := md.AddBool("state", false, "print the chipset state at the end")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run the stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var image string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		image = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *live && (*wav != "" || *digests) {
		return fmt.Errorf("-audio cannot be used with -wav or -digest")
	}

	cs, err := c.chipset(md, image)
	if err != nil {
		return err
	}

	if md.IsSet("copper") {
		startCopper(cs, *cop)
	}

	if *sample != "" {
		if err := playSample(cs, *sample, *channel, *sampleAddr); err != nil {
			return err
		}
	}

	var tr *tracker.Tracker
	if *track {
		tr = tracker.NewTracker(cs.Env())
		cs.Audio.SetTracker(tr)
	}

	if *stats {
		if err := statsview.Launch(md.Output, ""); err != nil {
			return err
		}
	}

	var ww *wavwriter.WavWriter
	if *wav != "" {
		ww, err = wavwriter.New(*wav, cs.Audio.Muxer.SampleRate())
		if err != nil {
			return err
		}
	}

	var audioDigest *digest.Audio
	var memDigest *digest.Memory
	if *digests {
		audioDigest = digest.NewAudio()
		memDigest = digest.NewMemory(cs.Mem)
	}

	// frames from the muxer are shared by the wav file and the digest
	buf := make([]audio.Frame, 1024)
	drain := func() {
		for {
			n := cs.Audio.Muxer.ReadFrames(buf)
			if n == 0 {
				return
			}
			if ww != nil {
				ww.Write(buf[:n])
			}
			if audioDigest != nil {
				audioDigest.Write(buf[:n])
			}
		}
	}

	var lim *limiter.Limiter
	if *live {
		player, err := hostaudio.NewPlayer(cs.Audio.Muxer, int(cs.Audio.Muxer.SampleRate()))
		if err != nil {
			return err
		}
		defer player.Close()
		player.Play()

		lim, err = newLimiter(cs)
		if err != nil {
			return err
		}
	}

	target := cs.Agnus.Frame() + int64(*frames)
	err = cs.Run(func(frame int64) (bool, error) {
		if !*live {
			drain()
		}
		if memDigest != nil {
			if err := memDigest.Update(); err != nil {
				return false, err
			}
		}
		if lim != nil {
			lim.Wait()
		}
		if interrupted(quit) {
			return false, nil
		}
		return *frames == 0 || frame < target, nil
	})

	if ww != nil {
		if cerr := ww.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return err
	}

	if tr != nil {
		for _, e := range tr.Copy() {
			fmt.Fprintf(md.Output, "%10d AUD%d %s %s\n", clocks.AsDMACycles(e.Clock), e.Channel, e.Registers, e.MusicalNote)
		}
	}

	if *digests {
		fmt.Fprintf(md.Output, "audio: %s\n", audioDigest.Hash())
		fmt.Fprintf(md.Output, "chip RAM: %s\n", memDigest.Hash())
	}

	if *state {
		fmt.Fprintln(md.Output, cs.Snapshot())
	}

	return nil
}

func serial(md *modalflag.Modes, quit <-chan os.Signal) error {
	md.NewMode()

	c := addCommon(md)
	device := md.AddString("device", "", "host serial device. the console is used if not specified")
	baud := md.AddInt("baud", 9600, "baud rate of the host serial device and initial SERPER value")
	cop := md.AddAddress("copper", 0, "start the copper at the address")
	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until interrupted")

	md.AdditionalHelp("When using the console, Ctrl-C is sent to the emulation. Press Ctrl-] to end the session.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var image string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		image = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cs, err := c.chipset(md, image)
	if err != nil {
		return err
	}

	serper, err := hostserial.SERPER(*baud, cs.Agnus.Lines() == agnus.LinesNTSC)
	if err != nil {
		return err
	}
	poke(cs, registers.SERPER, serper)

	if md.IsSet("copper") {
		startCopper(cs, *cop)
	}

	var host io.ReadWriteCloser
	if *device == "" {
		host, err = hostserial.OpenConsole()
	} else {
		host, err = hostserial.OpenDevice(*device, *baud)
	}
	if err != nil {
		return err
	}

	bridge := hostserial.NewBridge(host)
	cs.UART.Port.SetListener(bridge)

	lim, err := newLimiter(cs)
	if err != nil {
		_ = bridge.Close()
		return err
	}

	target := cs.Agnus.Frame() + int64(*frames)
	err = cs.Run(func(frame int64) (bool, error) {
		bridge.Pump(cs.UART.Port)
		lim.Wait()

		select {
		case <-bridge.Hungup():
			return false, nil
		default:
		}
		if interrupted(quit) {
			return false, nil
		}
		return *frames == 0 || frame < target, nil
	})

	cs.UART.Port.SetListener(nil)
	if cerr := bridge.Close(); err == nil {
		err = cerr
	}
	return err
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	load := md.AddAddress("load", 0, "chip RAM address at which to load the image")
	addr := md.AddAddress("addr", 0, "address of the copper list")
	count := md.AddInt("count", 64, "maximum number of instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("chip RAM image required for %s mode", md)
	case 1:
		mem, err := memory.NewChipRAM(memory.DefaultSize)
		if err != nil {
			return err
		}

		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return curated.Errorf("image: %v", err)
		}
		defer f.Close()

		if _, err := mem.Load(f, *load); err != nil {
			return curated.Errorf("image: %v", err)
		}

		for _, ins := range copper.Disassemble(mem, *addr, *count) {
			fmt.Fprintf(md.Output, "$%06x: %04x %04x  %s\n", ins.Address, ins.Word1, ins.Word2, ins)
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func script(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	state := md.AddBool("state", false, "print the chipset state at the end")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var image string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
	case 2:
		image = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cs, err := c.chipset(md, image)
	if err != nil {
		return err
	}

	s := scripting.NewScript(cs.Env(), cs)
	defer s.Close()

	if err := s.RunFile(md.GetArg(0)); err != nil {
		return err
	}

	if *state {
		fmt.Fprintln(md.Output, cs.Snapshot())
	}

	return nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	frames := md.AddInt("frames", 1, "number of frames to run before the dump")
	cop := md.AddAddress("copper", 0, "start the copper at the address")
	output := md.AddString("o", "", "output file. stdout if not specified")
	auto := md.AddBool("auto", false, "write to a uniquely named file in the current directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var image string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		image = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cs, err := c.chipset(md, image)
	if err != nil {
		return err
	}

	if md.IsSet("copper") {
		startCopper(cs, *cop)
	}

	if err := cs.RunFrames(*frames); err != nil {
		return err
	}

	fn := *output
	if *auto {
		if fn != "" {
			return fmt.Errorf("-o and -auto cannot be used together")
		}
		fn = paths.UniqueFilename("chipset", fmt.Sprintf("frame%d", cs.Agnus.Frame())) + ".dot"
	}

	if fn == "" {
		cs.Dump(md.Output)
		return nil
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("dump: %v", err)
	}
	cs.Dump(f)
	if err := f.Close(); err != nil {
		return curated.Errorf("dump: %v", err)
	}

	if *auto {
		fmt.Fprintln(md.Output, fn)
	}
	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	cop := md.AddAddress("copper", 0, "start the copper at the address")
	duration := md.AddDuration("duration", 5*time.Second, "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "create profiling reports: CPU, MEM, TRACE, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var image string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		image = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cs, err := c.chipset(md, image)
	if err != nil {
		return err
	}

	if md.IsSet("copper") {
		startCopper(cs, *cop)
	}

	return performance.Check(md.Output, prf, cs, *duration)
}
