package client

import (
	"fmt"

	"ccc/pkg/address"
	"ccc/pkg/ckb"

	"github.com/ethereum/go-ethereum/common"
)

type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

func NetworkFrom(s string) (Network, error) {
	switch Network(s) {
	case Mainnet, Testnet:
		return Network(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
}

// AddressPrefix is the bech32 prefix of addresses on the network.
func (n Network) AddressPrefix() string {
	if n == Mainnet {
		return address.PrefixMainnet
	}
	return address.PrefixTestnet
}

// DefaultURL is the public node of the network.
func (n Network) DefaultURL() string {
	if n == Mainnet {
		return "https://mainnet.ckb.dev/"
	}
	return "https://testnet.ckb.dev/"
}

type KnownScript string

const (
	Secp256k1Blake160 KnownScript = "Secp256k1Blake160"
	Secp256k1Multisig KnownScript = "Secp256k1Multisig"
	AnyoneCanPay      KnownScript = "AnyoneCanPay"
	OmniLock          KnownScript = "OmniLock"
	XUdt              KnownScript = "XUdt"
	NervosDao         KnownScript = "NervosDao"
	NostrLock         KnownScript = "NostrLock"
)

// ScriptInfo is a deployed script and the cell deps a transaction needs to run it.
type ScriptInfo struct {
	CodeHash ckb.Hash
	HashType ckb.HashType
	CellDeps []*ckb.CellDep
}

// Script builds a script of this code with args.
func (i *ScriptInfo) Script(args []byte) *ckb.Script {
	return &ckb.Script{
		CodeHash: i.CodeHash,
		HashType: i.HashType,
		Args:     append([]byte{}, args...),
	}
}

func (i *ScriptInfo) clone() *ScriptInfo {
	deps := make([]*ckb.CellDep, 0, len(i.CellDeps))
	for _, d := range i.CellDeps {
		deps = append(deps, d.Clone())
	}
	return &ScriptInfo{CodeHash: i.CodeHash, HashType: i.HashType, CellDeps: deps}
}

func dep(txHash string, index uint32, depType ckb.DepType) *ckb.CellDep {
	return &ckb.CellDep{
		OutPoint: ckb.NewOutPoint(common.HexToHash(txHash), index),
		DepType:  depType,
	}
}

var (
	secp256k1CodeHash = common.HexToHash("0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8")
	multisigCodeHash  = common.HexToHash("0x5c5069eb0857efc65e1bca0c07df34c31663b3622fd3876c876320fc9634e2a8")
	daoCodeHash       = common.HexToHash("0x82d76d1b75fe2fd9a27dfbaa65a039221a380d76c926f378d3f81cf3e7e13f2e")

	mainnetSecpGroup = "0x71a7ba8fc96349fea0ed3a5c47992e3b4084b031a42264a018e0072e8172e46c"
	testnetSecpGroup = "0xf8de3bb47d055cdf460d93a2a6e1b05f7432f9777c8c474abf4eec1d4aee5d37"
)

var knownScripts = map[Network]map[KnownScript]*ScriptInfo{
	Mainnet: {
		Secp256k1Blake160: {
			CodeHash: secp256k1CodeHash,
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep(mainnetSecpGroup, 0, ckb.DepTypeDepGroup)},
		},
		Secp256k1Multisig: {
			CodeHash: multisigCodeHash,
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep(mainnetSecpGroup, 1, ckb.DepTypeDepGroup)},
		},
		AnyoneCanPay: {
			CodeHash: common.HexToHash("0xd369597ff47f29fbc0d47d2e3775370d1250b85140c670e4718af712983a2354"),
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep("0x4153a2014952d7cac45f285ce9a7c5c0c0e1b21f2d378b82ac1433cb11c25c4d", 0, ckb.DepTypeDepGroup)},
		},
		OmniLock: {
			CodeHash: common.HexToHash("0x9b819793a64463aed77c615d6cb226eea5487ccfc0783043a587254cda2b6f26"),
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{
				dep(mainnetSecpGroup, 0, ckb.DepTypeDepGroup),
				dep("0xc76edf469816aa22f416503c38d0b533d2a018e253e379f134c3985b3472c842", 0, ckb.DepTypeCode),
			},
		},
		XUdt: {
			CodeHash: common.HexToHash("0x50bd8d6680b8b9cf98b73f3c08faf8b2a21914311954118ad6609be6e78a1b95"),
			HashType: ckb.HashTypeData1,
			CellDeps: []*ckb.CellDep{dep("0xc07844ce21b38e4b071dd0e1ee3b0e27afd8d7532491327f39b786343f558ab7", 0, ckb.DepTypeCode)},
		},
		NervosDao: {
			CodeHash: daoCodeHash,
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep("0xe2fb199810d49a4d8beec56718ba2593b665db9d52299a0f9e6e75416d73ff5c", 2, ckb.DepTypeCode)},
		},
		NostrLock: {
			CodeHash: common.HexToHash("0x641a89ad2f77721b803cd50d01351c1f308444072d5fa20088567196c0574c68"),
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep("0x1911208b136957d5f7c1708a8835edfe8ae1d02700d5cb2c3a6aacf4d5906306", 0, ckb.DepTypeCode)},
		},
	},
	Testnet: {
		Secp256k1Blake160: {
			CodeHash: secp256k1CodeHash,
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep(testnetSecpGroup, 0, ckb.DepTypeDepGroup)},
		},
		Secp256k1Multisig: {
			CodeHash: multisigCodeHash,
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep(testnetSecpGroup, 1, ckb.DepTypeDepGroup)},
		},
		AnyoneCanPay: {
			CodeHash: common.HexToHash("0x3419a1c09eb2567f6552ee7a8ecffd64155cffe0f1796e6e61ec088d740c1356"),
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep("0xec26b0f85ed839ece5f11c4c4e837ec359f5adc4420410f6453b1f6b60fb96a6", 0, ckb.DepTypeDepGroup)},
		},
		OmniLock: {
			CodeHash: common.HexToHash("0xf329effd1c475a2978453c8600e1eaf0bc2087ee093c3ee64cc96ec6847752cb"),
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{
				dep(testnetSecpGroup, 0, ckb.DepTypeDepGroup),
				dep("0xff91b063c78ed06f10a1ed436122bd7d671f9a72ef5f5fa28d05252c17cf4cef", 0, ckb.DepTypeCode),
			},
		},
		XUdt: {
			CodeHash: common.HexToHash("0x25c29dc317811a6f6f3985a7a9ebc4838bd388d19d0feeecf0bcd60f6c0975bb"),
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep("0xbf6fb538763efec2a70a6a3dcb7242787087e1030c4e7d86585bc63a9d337f5f", 0, ckb.DepTypeCode)},
		},
		NervosDao: {
			CodeHash: daoCodeHash,
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep("0x8f8c79eb6671709633fe6a46de93c0fedc9c1b8a6527a18d3983879542635c9f", 2, ckb.DepTypeCode)},
		},
		NostrLock: {
			CodeHash: common.HexToHash("0x6ae5ee0cb887b2df5a9a18137315b9bdc55be8d52637b2de0624092d5f0c91d5"),
			HashType: ckb.HashTypeType,
			CellDeps: []*ckb.CellDep{dep("0xa2a434dcdbe280b9ed75bb7d6c7d68186a842456aba0fc506657dc5ed7c01d68", 0, ckb.DepTypeCode)},
		},
	},
}
