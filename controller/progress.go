package controller

// TotalProgress returns the completed share of the deck as a percentage,
// counting the current slide as completed
func TotalProgress(current, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(current+1) / float64(total) * 100
}

// BulletProgress returns the position of the current slide along the bullet
// rail as a percentage
// Decks with at most one slide have no rail; defined as 0
func BulletProgress(current, total int) float64 {
	if total <= 1 {
		return 0
	}
	current = min(max(current, 0), total-1)
	return float64(current) / float64(total-1) * 100
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func (c *Controller) recomputeProgressLocked() {
	c.totalProgress = TotalProgress(c.currentSlide, c.cfg.TotalSlides)
	c.bulletProgress = BulletProgress(c.currentSlide, c.cfg.TotalSlides)
}
