package kindle

import (
	"io"
	"log"
)

// Parser converts a Kindle "Export Notebook" HTML file into a Book.
type Parser struct {
	builder *Builder
	// Logger receives one line per recoverable warning. Defaults to the
	// standard logger.
	Logger *log.Logger
}

func NewParser(opts Options) *Parser {
	return &Parser{builder: NewBuilder(opts)}
}

// Parse reads the whole notebook. Only a document that cannot be turned into
// blocks is an error; block-level problems end up in Result.Warnings.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	blocks, err := ExtractBlocks(r)
	if err != nil {
		return nil, err
	}

	res := p.builder.Build(blocks)

	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}
	for _, w := range res.Warnings {
		logger.Printf("WARNING: %s", w)
	}
	return res, nil
}
