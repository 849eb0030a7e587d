package importer

import (
	"io"

	"github.com/mywallet/mywallet/internal/transaction"
)

type Format string

const (
	FormatWallet Format = "wallet"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
