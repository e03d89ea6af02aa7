package quiz

// Generate runs the full pipeline: normalize the text, chunk it, then
// synthesize at most one question per chunk until the requested count is
// reached. The question kind for each chunk is drawn uniformly from
// opts.Types; unrecognized tags contribute nothing. Chunks that fail to yield
// a question are skipped silently, so the result may be shorter than
// requested, including empty.
func (g *Generator) Generate(text string, opts Options) []Question {
	if len(opts.Types) == 0 || opts.NumQuestions <= 0 {
		return nil
	}

	text = Normalize(text)
	chunks := Split(text, g.chunkSize)

	var questions []Question
	for _, chunk := range chunks {
		if len(questions) >= opts.NumQuestions {
			break
		}

		var q *Question
		switch opts.Types[g.rng.IntN(len(opts.Types))] {
		case TypeMultipleChoice:
			q = g.multipleChoice(chunk, opts.IncludeExplanations)
		case TypeTrueFalse:
			q = g.trueFalse(chunk, opts.IncludeExplanations)
		case TypeShortAnswer:
			q = g.shortAnswer(chunk, opts.IncludeExplanations)
		case TypeFillInTheBlank:
			q = g.fillInTheBlank(chunk, opts.IncludeExplanations)
		default:
			continue
		}

		if q != nil {
			questions = append(questions, *q)
		}
	}

	return questions
}

// Shuffle applies ShuffleOptions using the generator's random source.
func (g *Generator) Shuffle(q Question) (Question, error) {
	return ShuffleOptions(q, g.rng)
}
