package insight

var keywordsByCategory = []struct {
	category Category
	keywords []string
}{
	{CategoryProductivity, []string{"task", "todo", "project", "goal", "deadline", "schedule", "plan", "work", "meeting", "email", " urgent", "priority"}},
	{CategoryCreativity, []string{"idea", "design", "art", "create", "innovation", "imagine", "brainstorm", "concept", "inspiration", "draft"}},
	{CategoryMotivation, []string{"dream", "success", "achieve", "ambition", "aspiration", "future", "vision", "challenge", "growth", "potential"}},
	{CategoryMindfulness, []string{"reflect", "meditate", "gratitude", "journal", "feelings", "emotion", "peace", "calm", "mindful", "presence"}},
}

var taglines = map[Category][]string{
	CategoryProductivity: {
		"Your ideas are building momentum",
		"Small steps, big progress",
		"You're turning thoughts into action",
		"Organization is your superpower",
		"Progress happens one note at a time",
		"You're crafting your roadmap to success",
		"Ideas captured, potential unlocked",
	},
	CategoryCreativity: {
		"Your creativity knows no bounds",
		"Every note is a brushstroke on your canvas",
		"Innovation starts with a single thought",
		"You're painting with possibilities",
		"Imagination in progress",
		"Your mind is a universe of ideas",
		"Creativity flows through your notes",
	},
	CategoryMotivation: {
		"You're building something meaningful",
		"Every note is a step forward",
		"Your dedication is inspiring",
		"Great things are taking shape",
		"You're creating your legacy",
		"Persistence pays off",
		"Your journey is unfolding beautifully",
	},
	CategoryMindfulness: {
		"Reflection leads to growth",
		"Your thoughts matter, capture them",
		"Mindful moments, meaningful notes",
		"Clarity comes from expression",
		"You're present with your ideas",
		"Peace begins with a thought",
		"Your inner voice deserves to be heard",
	},
	CategoryGeneral: {
		"Your digital garden is blooming",
		"Thoughts captured, memories preserved",
		"Every note tells a story",
		"Your ideas are taking shape",
		"Knowledge grows with every note",
		"You're building your wisdom library",
		"Ideas that deserve to be remembered",
	},
}

var quotes = map[Category][]string{
	CategoryProductivity: {
		"Productivity is being able to do things that you were never able to do before. - Franz Kafka",
		"The way to get started is to quit talking and begin doing. - Walt Disney",
		"Your mind is for having ideas, not holding them. - David Allen",
		"Amateurs sit and wait for inspiration, the rest of us just get up and go to work. - Stephen King",
		"Success is the sum of small efforts, repeated day in and day out. - Robert Collier",
	},
	CategoryCreativity: {
		"Creativity is intelligence having fun. - Albert Einstein",
		"Every artist was first an amateur. - Ralph Waldo Emerson",
		"To live a creative life, we must lose our fear of being wrong. - Joseph Chilton Pearce",
		"Creativity takes courage. - Henri Matisse",
		"The creative adult is the child who survived. - Ursula K. Le Guin",
	},
	CategoryMotivation: {
		"The future belongs to those who believe in the beauty of their dreams. - Eleanor Roosevelt",
		"It always seems impossible until it is done. - Nelson Mandela",
		"Don't watch the clock; do what it does. Keep going. - Sam Levenson",
		"Believe you can and you're halfway there. - Theodore Roosevelt",
		"The only way to do great work is to love what you do. - Steve Jobs",
	},
	CategoryMindfulness: {
		"The present moment is filled with joy and happiness. If you are attentive, you will see it. - Thich Nhat Hanh",
		"Mindfulness is a way of befriending ourselves and our experience. - Jon Kabat-Zinn",
		"Wherever you are, be all there. - Jim Elliot",
		"The mind is everything. What you think you become. - Buddha",
		"Peace comes from within. Do not seek it without. - Buddha",
	},
	CategoryGeneral: {
		"A writer is someone for whom writing is more difficult than it is for other people. - Thomas Mann",
		"Ideas are like rabbits. You get a couple and learn how to handle them, and pretty soon you have a dozen. - John Steinbeck",
		"Write what should not be forgotten. - Isabel Allende",
		"The pen is the tongue of the mind. - Horace",
		"We write to taste life twice, in the moment and in retrospect. - Anaïs Nin",
	},
}
