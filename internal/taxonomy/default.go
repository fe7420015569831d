package taxonomy

var defaultEntries = []Entry{
	{"happy", SentimentPositive, ProfilePositive, 9},
	{"excited", SentimentPositive, ProfilePositive, 9},
	{"loving", SentimentPositive, ProfilePositive, 9},
	{"optimistic", SentimentPositive, ProfilePositive, 8},
	{"proud", SentimentPositive, ProfilePositive, 8},
	{"grateful", SentimentPositive, ProfilePositive, 8},
	{"relieved", SentimentPositive, ProfilePositive, 8},
	{"amused", SentimentPositive, ProfilePositive, 8},
	{"calm", SentimentPositive, ProfilePositive, 7},
	{"caring", SentimentPositive, ProfilePositive, 7},

	{"neutral", SentimentNeutral, ProfileNeutral, 5},
	{"surprised", SentimentNeutral, ProfileNeutral, 6},
	{"curious", SentimentNeutral, ProfileNeutral, 6},
	{"confused", SentimentNeutral, ProfileNeutral, 4},

	{"anxious", SentimentNegative, ProfileAnxiety, 3},
	{"nervous", SentimentNegative, ProfileAnxiety, 3},
	{"embarrassed", SentimentNegative, ProfileShame, 3},
	{"disappointed", SentimentNegative, ProfileSadness, 3},
	{"annoyed", SentimentNegative, ProfileAnger, 3},
	{"disapproving", SentimentNegative, ProfileAnger, 2},
	{"sad", SentimentNegative, ProfileSadness, 2},
	{"angry", SentimentNegative, ProfileAnger, 1},
	{"grieving", SentimentNegative, ProfileSadness, 1},
	{"disgusted", SentimentNegative, ProfileAnger, 1},
	{"remorseful", SentimentNegative, ProfileShame, 1},
}

var builtin = MustNew(defaultEntries)

// Default returns the built-in 25-mood taxonomy.
func Default() *Taxonomy {
	return builtin
}
