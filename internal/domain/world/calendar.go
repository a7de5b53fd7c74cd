package world

type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
	SeasonWinter Season = "Winter"
)

var seasons = [4]Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

type CalendarConfig struct {
	RealSecondsPerDay float64
	TimeScale         float64
}

// Calendar is the sole authority for in-game time. Day and season
// boundaries gate planting, growth rollover, and shop restocking.
type Calendar struct {
	minute    float64
	hour      int
	day       int
	seasonIdx int
	year      int

	realSecondsPerDay float64
	timeScale         float64
	paused            bool
}

func NewCalendar(cfg CalendarConfig) *Calendar {
	if cfg.RealSecondsPerDay <= 0 {
		cfg.RealSecondsPerDay = DefaultRealSecondsPerDay
	}
	if cfg.TimeScale <= 0 {
		cfg.TimeScale = 1.0
	}
	c := &Calendar{
		hour:              6,
		day:               1,
		year:              1,
		realSecondsPerDay: cfg.RealSecondsPerDay,
	}
	c.SetTimeScale(cfg.TimeScale)
	return c
}

// DayEvents reports the boundaries crossed by one Advance call.
type DayEvents struct {
	NewDay    bool
	NewSeason bool
	NewYear   bool
	Days      int
}

// Advance converts elapsed real seconds into game minutes and carries the
// overflow through hour, day, season, and year.
func (c *Calendar) Advance(dt float64) DayEvents {
	var ev DayEvents
	if c.paused || dt <= 0 {
		return ev
	}
	minutesPerRealSecond := (24.0 * 60.0) / c.realSecondsPerDay * c.timeScale
	c.minute += dt * minutesPerRealSecond
	for c.minute >= 60 {
		c.minute -= 60
		c.hour++
	}
	for c.hour >= 24 {
		c.hour -= 24
		c.day++
		ev.NewDay = true
		ev.Days++
		if c.day > DaysPerSeason {
			c.day = 1
			c.seasonIdx = (c.seasonIdx + 1) % len(seasons)
			ev.NewSeason = true
			if c.seasonIdx == 0 {
				c.year++
				ev.NewYear = true
			}
		}
	}
	return ev
}

func (c *Calendar) SetTimeScale(s float64) {
	if s < MinTimeScale {
		s = MinTimeScale
	}
	if s > MaxTimeScale {
		s = MaxTimeScale
	}
	c.timeScale = s
}

func (c *Calendar) TimeScale() float64 { return c.timeScale }

// MinutesPerRealSecond is the current real-to-game time ratio.
func (c *Calendar) MinutesPerRealSecond() float64 {
	return (24.0 * 60.0) / c.realSecondsPerDay * c.timeScale
}
func (c *Calendar) Pause()             { c.paused = true }
func (c *Calendar) Resume()            { c.paused = false }
func (c *Calendar) Paused() bool       { return c.paused }

func (c *Calendar) Minute() int    { return int(c.minute) }
func (c *Calendar) Hour() int      { return c.hour }
func (c *Calendar) Day() int       { return c.day }
func (c *Calendar) SeasonIndex() int { return c.seasonIdx }
func (c *Calendar) Season() Season { return seasons[c.seasonIdx] }
func (c *Calendar) Year() int      { return c.year }

// CalendarState is the persisted form of a Calendar.
type CalendarState struct {
	Minute    float64 `json:"minute"`
	Hour      int     `json:"hour"`
	Day       int     `json:"day"`
	SeasonIdx int     `json:"season_idx"`
	Year      int     `json:"year"`
	TimeScale float64 `json:"time_scale"`
}

func (c *Calendar) State() CalendarState {
	return CalendarState{
		Minute:    c.minute,
		Hour:      c.hour,
		Day:       c.day,
		SeasonIdx: c.seasonIdx,
		Year:      c.year,
		TimeScale: c.timeScale,
	}
}

func (c *Calendar) Restore(st CalendarState) {
	if st.Day < 1 || st.Day > DaysPerSeason || st.Hour < 0 || st.Hour >= 24 ||
		st.Minute < 0 || st.Minute >= 60 || st.SeasonIdx < 0 || st.SeasonIdx >= len(seasons) {
		return
	}
	c.minute = st.Minute
	c.hour = st.Hour
	c.day = st.Day
	c.seasonIdx = st.SeasonIdx
	if st.Year >= 1 {
		c.year = st.Year
	}
	if st.TimeScale > 0 {
		c.SetTimeScale(st.TimeScale)
	}
}
