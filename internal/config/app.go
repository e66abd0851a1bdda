package config

import (
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

type Command string

const (
	CommandPlay    Command = "play"
	CommandHistory Command = "history"
	CommandServe   Command = "serve"
)

const Version = "0.3.0"

// App is the command line of a host. Flags left unset do not override
// the file or environment.
type App struct {
	app     *kingpin.Application
	command Command
	path    *string

	logLevel, logFile, database, track, beatmap *string
	metricsAddr, sshAddr, hostKey               *string
	reducedMotion, mute                         *bool
	framePeriod, startDelay                     *time.Duration
	limit                                       *int
}

// NewApp builds the local host's command line with its play and history
// commands.
func NewApp() *App {
	a := newApp("firewall", "Deflect the incoming threats on the beat.")
	a.playFlags()
	a.app.Command(string(CommandPlay), "Play the chapter.").Default()
	history := a.app.Command(string(CommandHistory), "List and re-judge recorded runs.")
	a.limit = history.Flag("limit", "Runs to list").Short('n').Int()
	return a
}

// NewServeApp builds the ssh host's command line.
func NewServeApp() *App {
	a := newApp("firewall-ssh", "Serve the chapter over ssh.")
	a.command = CommandServe
	a.sshAddr = a.app.Flag("addr", "Listen address").Short('a').String()
	a.hostKey = a.app.Flag("host-key", "Host key path, created if missing").String()
	a.playFlags()
	return a
}

func newApp(name, help string) *App {
	a := &App{app: kingpin.New(name, help)}
	a.app.Version(Version)
	a.app.HelpFlag.Short('h')
	a.path = a.app.Flag("config", "YAML settings file").Short('c').Envar(EnvConfig).String()
	a.logLevel = a.app.Flag("log-level", "debug, info, warn or error").String()
	a.logFile = a.app.Flag("log-file", "Log file").String()
	a.database = a.app.Flag("database", "Run history database").String()
	a.metricsAddr = a.app.Flag("metrics-addr", "Serve prometheus metrics on this address").String()
	return a
}

func (a *App) playFlags() {
	f := a.app
	a.track = f.Flag("track", "Backing track, mp3 or ogg").String()
	a.beatmap = f.Flag("beatmap", "Beat map file replacing the built in map").String()
	a.reducedMotion = f.Flag("reduced-motion", "Place threats without travel").Bool()
	a.mute = f.Flag("mute", "Disable audio").Short('m').Bool()
	a.framePeriod = f.Flag("frame-period", "Render frame period").Short('p').Duration()
	a.startDelay = f.Flag("delay", "Start delay").Short('d').Duration()
}

// Parse reads args (without the program name) and loads the layered
// config.
func (a *App) Parse(args []string) (Command, *Config, error) {
	selected, err := a.app.Parse(args)
	if nil != err {
		return "", nil, err
	}
	command := a.command
	if selected != "" {
		command = Command(selected)
	}
	cfg, err := Load(*a.path, a.overrides())
	if nil != err {
		return "", nil, err
	}
	return command, cfg, nil
}

func (a *App) overrides() map[string]interface{} {
	o := map[string]interface{}{}
	str := func(key string, v *string) {
		if nil != v && *v != "" {
			o[key] = *v
		}
	}
	str("log_level", a.logLevel)
	str("log_file", a.logFile)
	str("database", a.database)
	str("track", a.track)
	str("beatmap", a.beatmap)
	str("metrics_addr", a.metricsAddr)
	str("ssh_addr", a.sshAddr)
	str("host_key", a.hostKey)
	if nil != a.reducedMotion && *a.reducedMotion {
		o["reduced_motion"] = true
	}
	if nil != a.mute && *a.mute {
		o["mute"] = true
	}
	if nil != a.framePeriod && *a.framePeriod > 0 {
		o["frame_period"] = *a.framePeriod
	}
	if nil != a.startDelay && *a.startDelay > 0 {
		o["start_delay"] = *a.startDelay
	}
	if nil != a.limit && *a.limit > 0 {
		o["history_limit"] = *a.limit
	}
	return o
}

// Usage exits after printing err and the usage text.
func (a *App) Usage(err error) {
	a.app.FatalUsage("%v\n", err)
}
