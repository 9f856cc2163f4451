package logic

// Reload is a per-shooter fire countdown measured in ticks.
type Reload struct {
	Countdown int
	Period    int
}

// NewReload returns a reload that first fires after a full period.
func NewReload(period int) Reload {
	if period < 0 {
		period = 0
	}
	return Reload{Countdown: period, Period: period}
}

// Tick advances the countdown by one tick and reports whether the shooter
// fires now. The shot happens on the tick the countdown is observed at zero,
// after which it restarts from Period.
func (r *Reload) Tick() bool {
	if !r.Ready() {
		r.Cool()
		return false
	}
	r.Trigger()
	return true
}

// Cool decrements a running countdown without firing.
func (r *Reload) Cool() {
	if r.Countdown > 0 {
		r.Countdown--
	}
}

// Ready reports whether the countdown has elapsed.
func (r *Reload) Ready() bool {
	return r.Countdown <= 0
}

// Trigger restarts the countdown after a shot.
func (r *Reload) Trigger() {
	r.Countdown = r.Period
}
