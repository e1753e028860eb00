package update

type Quote struct {
	Text   string
	Author string
}

var quotes = []Quote{
	{Text: "Habit is either the best of servants or the worst of masters.", Author: "Nathaniel Emmons"},
	{Text: "We are what we repeatedly do. Excellence, then, is not an act, but a habit.", Author: "Aristotle"},
	{Text: "You do not rise to the level of your goals. You fall to the level of your systems.", Author: "James Clear"},
	{Text: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier"},
	{Text: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
	{Text: "Never put off till tomorrow what you can do today.", Author: "Benjamin Franklin"},
}

func quoteAt(index int) Quote {
	if len(quotes) == 0 {
		return Quote{}
	}
	i := index % len(quotes)
	if i < 0 {
		i += len(quotes)
	}
	return quotes[i]
}
