package quality

import "regexp"

// textPattern is a base regexp with an optional exclusion applied to
// the text immediately following each match. A match followed by text
// the exclusion accepts does not count. This stands in for negative
// lookahead, which RE2 does not support.
type textPattern struct {
	re       *regexp.Regexp
	excluded *regexp.Regexp
}

func pat(expr string) textPattern {
	return textPattern{re: regexp.MustCompile(expr)}
}

func patExcept(expr, after string) textPattern {
	return textPattern{
		re:       regexp.MustCompile(expr),
		excluded: regexp.MustCompile(after),
	}
}

// count returns how many base matches survive the exclusion check.
func (p textPattern) count(text string) int {
	matches := p.re.FindAllStringIndex(text, -1)
	if p.excluded == nil {
		return len(matches)
	}
	n := 0
	for _, m := range matches {
		if !p.excluded.MatchString(text[m[1]:]) {
			n++
		}
	}
	return n
}

func countAll(patterns []textPattern, text string) int {
	total := 0
	for _, p := range patterns {
		total += p.count(text)
	}
	return total
}

// promotionalPatterns match marketing speak: superlatives without
// evidence, buzzwords, vague claims, and empty promises.
var promotionalPatterns = []textPattern{
	pat(`(?i)\b(best|leading|premier|top|revolutionary|breakthrough|cutting-edge|state-of-the-art|world-class|industry-leading)\b`),
	pat(`(?i)\b(unprecedented|unparalleled|unmatched|superior|advanced|innovative|transformative|groundbreaking)\b`),
	pat(`(?i)\b(game-changer|disruptive|next-generation|future-proof|enterprise-grade|mission-critical)\b`),
	patExcept(`(?i)\b(seamless|robust|powerful|flexible|scalable|reliable|efficient)\b`, `(?i)^( benchmark| test| evaluation)`),
	patExcept(`(?i)\b(significantly|substantially|dramatically|greatly|highly|extremely|exceptionally)\b`, `^ \d`),
	patExcept(`(?i)\b(various|numerous|many|several|multiple)\b`, `^ \d`),
	pat(`(?i)\b(we are proud|we are excited|we are pleased|delighted to announce)\b`),
	patExcept(`(?i)\b(designed to|built to|tailored to|optimized for)\b`, `(?i)^( meet .*benchmark| achieve .*performance)`),
	patExcept(`(?i)\b(unlimited|endless|infinite|effortless|instant|automatic)\b`, `(?i)^( in theory| in principle)`),
}

// substantivePatterns match real technical content: quantitative
// metrics, methodologies, concrete limitations, and evidence-based
// statements.
var substantivePatterns = []textPattern{
	pat(`(?i)\b\d+\.?\d*\s*(GB|TB|MB|KB|parameters?|tokens?|layers?|heads?|dimensions?)\b`),
	pat(`(?i)\b\d+\.?\d*\s*(%|percent|percentage|accuracy|precision|recall|F1)\b`),
	pat(`(?i)\bscored?\s+\d+\.?\d*\b`),
	pat(`(?i)\b(MMLU|HumanEval|GSM8K|HellaSwag|ARC|BLEU|ROUGE|METEOR)\b`),
	pat(`(?i)\b(evaluated on|tested on|measured using|calculated via|assessed through)\b`),
	pat(`(?i)\b(benchmark|dataset|corpus|evaluation suite)\b.*\b\d`),
	pat(`(?i)\b(red team|adversarial testing|ablation study|A/B test)\b`),
	pat(`(?i)\b(does not support|cannot handle|limited to|restricted to|fails when)\b`),
	pat(`(?i)\b(known limitation|edge case|failure mode|out-of-scope)\b`),
	pat(`(?i)\b(as shown in|according to|results indicate|data shows|experiments demonstrate)\b`),
	pat(`(?i)\b(Table \d+|Figure \d+|Section \d+|Appendix [A-Z])\b`),
	pat(`(?i)\b(architecture|algorithm|model|training|fine-tuning|inference)\b.*\b(described|implemented|configured|optimized)\b`),
	pat(`(?i)\b(hyperparameter|learning rate|batch size|epoch|iteration)\b`),
}

// vaguenessPatterns match hedging and filler language.
var vaguenessPatterns = []textPattern{
	pat(`(?i)\b(thing|stuff|various things|and so on|etc\.)\b`),
	pat(`(?i)\b(kind of|sort of|type of|relatively|fairly|quite|rather)\b`),
	patExcept(`(?i)\b(generally|typically|usually|often|sometimes|may|might|could)\b`, `(?i)^ be (measured|quantified|evaluated)`),
	patExcept(`(?i)\b(approximately|roughly|around|about)\b`, `^ \d`),
}

// specificityPatterns match concrete metrics, dates, versions, and
// comparisons.
var specificityPatterns = []textPattern{
	pat(`(?i)\b\d+\.?\d*\s*[A-Za-z]+`),
	pat(`(?i)\b\d{1,3}(,\d{3})*(\.\d+)?\b`),
	pat(`(?i)\b(20\d{2}|v\d+\.\d+|version \d+)\b`),
	pat(`(?i)\b(compared to|versus|vs\.|relative to|against)\b.*\b\d`),
	pat(`(?i)\b(\d+%\s*(better|worse|higher|lower|more|less|faster|slower))\b`),
	pat(`(?i)\b(for example|for instance|specifically|namely|such as)\b.*\b[A-Z]`),
}

// Regexps for information density and evidence indicators.
var (
	numberRegex        = regexp.MustCompile(`\b\d+\.?\d*`)
	technicalTermRegex = regexp.MustCompile(`\b[A-Z]{2,}|[a-z]+\d+`)
	citationRegex      = regexp.MustCompile(`(?i)\b(Table|Figure|Section|Appendix|et al\.)\b`)

	numberedRefRegex = regexp.MustCompile(`(?i)\b(Table|Figure|Section|Appendix)\s*\d+`)
	benchmarkRegex   = regexp.MustCompile(`(?i)\b(MMLU|HumanEval|GSM8K|HellaSwag|ARC|benchmark)\b`)
	evaluationRegex  = regexp.MustCompile(`(?i)\b(evaluated|tested|measured|assessed|scored)\b`)
	comparisonRegex  = regexp.MustCompile(`(?i)\b(compared to|vs\.|versus|against|relative to)\b`)

	superlativeRegex = regexp.MustCompile(`(?i)\b(best|leading|revolutionary|unprecedented)\b`)
	intensifierRegex = regexp.MustCompile(`(?i)\b(significantly|substantially|dramatically)\b`)
	percentRegex     = regexp.MustCompile(`\b\d+\.?\d*\s*%`)
	vagueQuantRegex  = regexp.MustCompile(`(?i)\b(various|numerous|many|several)\b`)
)
