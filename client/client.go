// Package client is the module's transport boundary. It speaks the node RPC
// surface (runtime version, metadata, block hashes, nonces, submission) over
// an injected call function and owns no connection, retry or timeout policy
// of its own.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"

	"github.com/wireforge/go-subwire/metadata"
	"github.com/wireforge/go-subwire/types"
)

var log = logrus.WithField("module", "client")

// ErrIncompatibleRuntime reports a live runtime that does not match the
// versions the caller was built against.
var ErrIncompatibleRuntime = errors.New("incompatible runtime")

// CallFunc performs one RPC round trip and returns the result payload.
// Inject a func backed by whatever transport the application runs; the
// injected func owns timeouts, retries and connection lifecycle.
type CallFunc func(method string, params ...interface{}) (json.RawMessage, error)

// RuntimeVersion is the slice of state_getRuntimeVersion this module acts
// on. Remaining fields of the RPC answer are ignored.
type RuntimeVersion struct {
	SpecName           string `json:"specName"`
	ImplName           string `json:"implName"`
	SpecVersion        uint32 `json:"specVersion"`
	TransactionVersion uint32 `json:"transactionVersion"`
}

// Client resolves chain state over an injected transport.
type Client struct {
	call  CallFunc
	cache *MetadataCache

	mu      sync.Mutex
	genesis *types.Hash
}

// NewClient wraps a transport with a private metadata cache.
func NewClient(call CallFunc) *Client {
	return NewClientWithCache(call, NewMetadataCache())
}

// NewClientWithCache wraps a transport with a caller-owned cache, letting
// several clients (or client generations across reconnects) share decoded
// metadata.
func NewClientWithCache(call CallFunc, cache *MetadataCache) *Client {
	return &Client{call: call, cache: cache}
}

// RuntimeVersion fetches the live runtime's version facts.
func (c *Client) RuntimeVersion() (RuntimeVersion, error) {
	raw, err := c.call("state_getRuntimeVersion")
	if err != nil {
		return RuntimeVersion{}, fmt.Errorf("state_getRuntimeVersion: %w", err)
	}
	var v RuntimeVersion
	if err := json.Unmarshal(raw, &v); err != nil {
		return RuntimeVersion{}, fmt.Errorf("state_getRuntimeVersion: %w", err)
	}
	return v, nil
}

// Metadata returns the decoded metadata of the live runtime. The blob is
// fetched and decoded once per runtime build and then served from the cache,
// keyed by spec name and spec version.
func (c *Client) Metadata() (*metadata.Metadata, error) {
	version, err := c.RuntimeVersion()
	if err != nil {
		return nil, err
	}
	key := metadataKey{SpecName: version.SpecName, SpecVersion: version.SpecVersion}
	if md, ok := c.cache.get(key); ok {
		return md, nil
	}
	log.WithField("spec", fmt.Sprintf("%s/%d", key.SpecName, key.SpecVersion)).
		Debug("metadata cache miss, fetching")

	raw, err := c.call("state_getMetadata")
	if err != nil {
		return nil, fmt.Errorf("state_getMetadata: %w", err)
	}
	var blobHex string
	if err := json.Unmarshal(raw, &blobHex); err != nil {
		return nil, fmt.Errorf("state_getMetadata: %w", err)
	}
	blob, err := hexutil.Decode(blobHex)
	if err != nil {
		return nil, fmt.Errorf("state_getMetadata: %w", err)
	}
	md, err := metadata.Decode(blob)
	if err != nil {
		return nil, err
	}
	c.cache.put(key, md)
	return md, nil
}

// GenesisHash returns the block-zero hash, fetched once per client.
func (c *Client) GenesisHash() (types.Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.genesis != nil {
		return *c.genesis, nil
	}
	h, err := c.BlockHash(0)
	if err != nil {
		return types.Hash{}, err
	}
	c.genesis = &h
	return h, nil
}

// BlockHash returns the hash of the block at the given height.
func (c *Client) BlockHash(n uint64) (types.Hash, error) {
	raw, err := c.call("chain_getBlockHash", n)
	if err != nil {
		return types.Hash{}, fmt.Errorf("chain_getBlockHash: %w", err)
	}
	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		return types.Hash{}, fmt.Errorf("chain_getBlockHash: %w", err)
	}
	return types.HashFromHex(hex)
}

// AccountNextIndex returns the next nonce for an address, counting both
// finalized state and pending pool transactions. The address travels in the
// node's own text encoding; producing it is the caller's concern.
func (c *Client) AccountNextIndex(address string) (uint64, error) {
	raw, err := c.call("system_accountNextIndex", address)
	if err != nil {
		return 0, fmt.Errorf("system_accountNextIndex: %w", err)
	}
	var nonce uint64
	if err := json.Unmarshal(raw, &nonce); err != nil {
		return 0, fmt.Errorf("system_accountNextIndex: %w", err)
	}
	return nonce, nil
}

// SubmitExtrinsic hands a fully encoded extrinsic to the node's transaction
// pool and returns the transaction hash the node reports.
func (c *Client) SubmitExtrinsic(ext []byte) (types.Hash, error) {
	raw, err := c.call("author_submitExtrinsic", hexutil.Encode(ext))
	if err != nil {
		return types.Hash{}, fmt.Errorf("author_submitExtrinsic: %w", err)
	}
	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		return types.Hash{}, fmt.Errorf("author_submitExtrinsic: %w", err)
	}
	return types.HashFromHex(hex)
}

// CheckRuntimeCompatibility compares the live runtime against expected.
// Zero-valued fields of expected are not checked, so a caller can pin just
// specName, or name and versions together. The first mismatch is reported
// with the field's RPC name.
func (c *Client) CheckRuntimeCompatibility(expected RuntimeVersion) error {
	live, err := c.RuntimeVersion()
	if err != nil {
		return err
	}
	if expected.SpecName != "" && live.SpecName != expected.SpecName {
		return fmt.Errorf("%w: specName is %q, expected %q", ErrIncompatibleRuntime, live.SpecName, expected.SpecName)
	}
	if expected.ImplName != "" && live.ImplName != expected.ImplName {
		return fmt.Errorf("%w: implName is %q, expected %q", ErrIncompatibleRuntime, live.ImplName, expected.ImplName)
	}
	if expected.SpecVersion != 0 && live.SpecVersion != expected.SpecVersion {
		return fmt.Errorf("%w: specVersion is %d, expected %d", ErrIncompatibleRuntime, live.SpecVersion, expected.SpecVersion)
	}
	if expected.TransactionVersion != 0 && live.TransactionVersion != expected.TransactionVersion {
		return fmt.Errorf("%w: transactionVersion is %d, expected %d", ErrIncompatibleRuntime, live.TransactionVersion, expected.TransactionVersion)
	}
	return nil
}
