package importer

import (
	"fmt"
	"io"

	"github.com/mywallet/mywallet/internal/importer/wallet"
	"github.com/mywallet/mywallet/internal/transaction"
)

type Service struct {
	walletImporter Importer
}

func NewService() *Service {
	return &Service{
		walletImporter: wallet.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]transaction.CreateParams, error) {
	var importer Importer

	switch format {
	case FormatWallet:
		importer = s.walletImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return importer.Parse(r)
}
