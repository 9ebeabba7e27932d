package service

import "math/rand"

// MotivationalQuotes is the fixed pool a session snapshots from at start.
var MotivationalQuotes = []string{
	"Stay focused, be present 🌱",
	"Your focus determines your reality ✨",
	"One step at a time, one breath at a time 🧘",
	"The secret of change is to focus all your energy not on fighting the old, but on building the new 🌟",
	"Concentrate all your thoughts upon the work at hand 🎯",
	"Focus is a matter of deciding what things you're not going to do 💡",
	"Where focus goes, energy flows 🔥",
	"The successful warrior is the average person, with laser-like focus 🗡️",
	"Stay present. Stay focused. Stay calm 🌊",
	"Deep work leads to deep rewards 📚",
}

func RandomQuote() string {
	return MotivationalQuotes[rand.Intn(len(MotivationalQuotes))]
}
