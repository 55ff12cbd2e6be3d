package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/giga"
)

// StyleFromPalette returns a function that maps chroma token types to
// palette colors. Unlisted token types keep the default color.
func StyleFromPalette(p giga.Palette) StyleFunc {
	return func(tt chromalib.TokenType) giga.Color {
		switch tt {
		case chromalib.KeywordType, chromalib.NameClass:
			return p.Type

		case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
			chromalib.KeywordNamespace, chromalib.KeywordPseudo, chromalib.KeywordReserved:
			return p.Keyword

		case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
			chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
			chromalib.CommentSpecial:
			return p.Comment

		case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
			chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
			chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
			chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
			chromalib.StringSymbol:
			return p.String

		case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
			chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct:
			return p.Number

		case chromalib.Operator, chromalib.OperatorWord:
			return p.Operator

		case chromalib.NameFunction, chromalib.NameFunctionMagic:
			return p.Function

		case chromalib.NameConstant, chromalib.NameBuiltin:
			return p.Constant

		case chromalib.Punctuation:
			return p.Punctuation

		default:
			return ""
		}
	}
}
