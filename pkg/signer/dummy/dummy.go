package dummy

import (
	"context"
	"fmt"

	"ccc/pkg/address"
	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/signer"
)

// Opener hands a link to whatever can open it, usually a browser or a wallet app.
type Opener func(ctx context.Context, link string) error

var (
	_ signer.Signer = (*OpenLink)(nil)
	_ signer.Signer = (*AlwaysError)(nil)
)

// OpenLink stands in for a wallet that is not installed. Connecting opens a
// link to it and every other operation is unsupported.
type OpenLink struct {
	client *client.Client
	typ    signer.Type
	link   string
	open   Opener
}

func NewOpenLink(c *client.Client, typ signer.Type, link string, open Opener) *OpenLink {
	return &OpenLink{client: c, typ: typ, link: link, open: open}
}

func (s *OpenLink) name() string {
	return fmt.Sprintf("open link signer %s", s.link)
}

func (s *OpenLink) Type() signer.Type {
	return s.typ
}

func (s *OpenLink) SignType() signer.SignType {
	return signer.SignTypeUnknown
}

func (s *OpenLink) Client() *client.Client {
	return s.client
}

func (s *OpenLink) Link() string {
	return s.link
}

func (s *OpenLink) Connect(ctx context.Context) error {
	if err := s.open(ctx, s.link); err != nil {
		return fmt.Errorf("open %s: %w", s.link, err)
	}
	return nil
}

func (s *OpenLink) IsConnected(context.Context) (bool, error) {
	return false, nil
}

func (s *OpenLink) GetInternalAddress(context.Context) (string, error) {
	return "", signer.NotSupported(s.name(), "get internal address")
}

func (s *OpenLink) GetIdentity(context.Context) (string, error) {
	return "", signer.NotSupported(s.name(), "get identity")
}

func (s *OpenLink) GetAddressObjs(context.Context) ([]*address.Address, error) {
	return nil, signer.NotSupported(s.name(), "get addresses")
}

func (s *OpenLink) GetRecommendedAddressObj(context.Context) (*address.Address, error) {
	return nil, signer.NotSupported(s.name(), "get addresses")
}

func (s *OpenLink) SignMessageRaw(context.Context, []byte) (string, error) {
	return "", signer.NotSupported(s.name(), "sign message")
}

func (s *OpenLink) PrepareTransaction(_ context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
	return tx.Clone(), nil
}

func (s *OpenLink) SignOnlyTransaction(context.Context, *ckb.Transaction) (*ckb.Transaction, error) {
	return nil, signer.NotSupported(s.name(), "sign transaction")
}

// AlwaysError fails every operation with the same error, for wallets that are
// detected but unusable.
type AlwaysError struct {
	client *client.Client
	typ    signer.Type
	err    error
}

func NewAlwaysError(c *client.Client, typ signer.Type, message string) *AlwaysError {
	return &AlwaysError{
		client: c,
		typ:    typ,
		err:    fmt.Errorf("%s: %w", message, signer.ErrNotSupported),
	}
}

func (s *AlwaysError) Type() signer.Type {
	return s.typ
}

func (s *AlwaysError) SignType() signer.SignType {
	return signer.SignTypeUnknown
}

func (s *AlwaysError) Client() *client.Client {
	return s.client
}

func (s *AlwaysError) Connect(context.Context) error {
	return s.err
}

func (s *AlwaysError) IsConnected(context.Context) (bool, error) {
	return false, nil
}

func (s *AlwaysError) GetInternalAddress(context.Context) (string, error) {
	return "", s.err
}

func (s *AlwaysError) GetIdentity(context.Context) (string, error) {
	return "", s.err
}

func (s *AlwaysError) GetAddressObjs(context.Context) ([]*address.Address, error) {
	return nil, s.err
}

func (s *AlwaysError) GetRecommendedAddressObj(context.Context) (*address.Address, error) {
	return nil, s.err
}

func (s *AlwaysError) SignMessageRaw(context.Context, []byte) (string, error) {
	return "", s.err
}

func (s *AlwaysError) PrepareTransaction(context.Context, *ckb.Transaction) (*ckb.Transaction, error) {
	return nil, s.err
}

func (s *AlwaysError) SignOnlyTransaction(context.Context, *ckb.Transaction) (*ckb.Transaction, error) {
	return nil, s.err
}
