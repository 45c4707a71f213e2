package ckbsigner

import (
	"context"
	"fmt"

	"ccc/pkg/address"
	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/signer"
)

var _ signer.Signer = (*ScriptReadonly)(nil)

// ScriptReadonly watches arbitrary lock scripts.
type ScriptReadonly struct {
	signer.ReadOnly
	client  *client.Client
	scripts []*ckb.Script
}

func NewScriptReadonly(c *client.Client, scripts ...*ckb.Script) (*ScriptReadonly, error) {
	if len(scripts) == 0 {
		return nil, fmt.Errorf("script signer: %w", signer.ErrNoAddress)
	}
	cloned := make([]*ckb.Script, 0, len(scripts))
	for _, s := range scripts {
		cloned = append(cloned, s.Clone())
	}
	return &ScriptReadonly{
		ReadOnly: signer.ReadOnly{Name: "ckb script signer"},
		client:   c,
		scripts:  cloned,
	}, nil
}

func (s *ScriptReadonly) Type() signer.Type {
	return signer.TypeCKB
}

func (s *ScriptReadonly) SignType() signer.SignType {
	return signer.SignTypeUnknown
}

func (s *ScriptReadonly) Client() *client.Client {
	return s.client
}

func (s *ScriptReadonly) GetInternalAddress(ctx context.Context) (string, error) {
	return signer.GetRecommendedAddress(ctx, s)
}

func (s *ScriptReadonly) GetIdentity(ctx context.Context) (string, error) {
	return signer.GetRecommendedAddress(ctx, s)
}

func (s *ScriptReadonly) GetAddressObjs(context.Context) ([]*address.Address, error) {
	out := make([]*address.Address, 0, len(s.scripts))
	for _, script := range s.scripts {
		addr, err := address.New(script, s.client.AddressPrefix())
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}

func (s *ScriptReadonly) GetRecommendedAddressObj(ctx context.Context) (*address.Address, error) {
	return signer.RecommendedAddressObj(ctx, s)
}

func (s *ScriptReadonly) PrepareTransaction(_ context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
	return tx.Clone(), nil
}
