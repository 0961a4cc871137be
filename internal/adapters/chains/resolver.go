package chains

import (
	"context"

	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/regup-org/regup/internal/usecase"
)

// Resolver maps EVM chain identifiers to the names they are registered
// under in the chain-selectors dataset.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Name returns the registered network name for a chain ID, or "" when the
// chain is not in the dataset.
func (r *Resolver) Name(ctx context.Context, chainID string) string {
	details, err := chainsel.GetChainDetailsByChainIDAndFamily(chainID, chainsel.FamilyEVM)
	if err != nil {
		return ""
	}
	return details.ChainName
}

var _ usecase.ChainResolver = (*Resolver)(nil)
