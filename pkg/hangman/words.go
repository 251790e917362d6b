package hangman

var (
	easyWords   = []string{"cat", "dog", "bird", "fish", "tree"}
	mediumWords = []string{"python", "computer", "network", "software", "interface"}
	hardWords   = []string{"algorithm", "programming", "developer", "javascript", "database"}
)
