package world

type Crop struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	TX               int     `json:"tx"`
	TY               int     `json:"ty"`
	Stage            float64 `json:"stage"`
	Watered          bool    `json:"watered"`
	DaysSinceWatered int     `json:"days_since_watered"`
	DaysGrowing      int     `json:"days_growing"`
}

// Grow advances maturity while the crop is watered. Unwatered crops hold
// their stage, they never regress.
func (c *Crop) Grow(dt float64) {
	if !c.Watered {
		return
	}
	c.Stage += GrowthRate * dt
	if c.Stage > MatureStage {
		c.Stage = MatureStage
	}
}

func (c *Crop) Water() {
	c.Watered = true
	c.DaysSinceWatered = 0
}

func (c *Crop) Mature() bool {
	return c.Stage >= MatureStage
}

// StartDay applies the daily rollover: a watered crop banks a growth day
// and dries out, a dry crop just gets thirstier.
func (c *Crop) StartDay() {
	if c.Watered {
		c.DaysGrowing++
		c.Watered = false
		return
	}
	c.DaysSinceWatered++
}
