// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto defines the signature recovery and key fingerprint
// capabilities and their driver registries. Drivers register themselves
// in init, the verifier only ever sees the interfaces.
package crypto

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dualsig/dualsig/types"
)

// Recoverer recovers the signing public key from a 32 byte message digest
// and a 65 byte recoverable signature in [R || S || V] form. The result is
// the 65 byte uncompressed key encoding. Pure: identical inputs always
// yield an identical key or an identical failure.
type Recoverer interface {
	Recover(hash []byte, sig []byte) ([]byte, error)
}

// Fingerprinter reduces a 65 byte uncompressed public key to its 20 byte
// registered fingerprint. Total over well formed input.
type Fingerprinter interface {
	Fingerprint(pub []byte) types.Fingerprint
}

var (
	driverMutex    sync.Mutex
	recoverers     = make(map[string]Recoverer)
	fingerprinters = make(map[string]Fingerprinter)
)

// RegisterRecoverer registers a recovery driver, nil or duplicate panics.
func RegisterRecoverer(name string, driver Recoverer) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	if driver == nil {
		panic("crypto: RegisterRecoverer driver is nil")
	}
	if _, dup := recoverers[name]; dup {
		panic("crypto: RegisterRecoverer called twice for driver " + name)
	}
	recoverers[name] = driver
}

// RegisterFingerprinter registers a fingerprint driver, nil or duplicate panics.
func RegisterFingerprinter(name string, driver Fingerprinter) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	if driver == nil {
		panic("crypto: RegisterFingerprinter driver is nil")
	}
	if _, dup := fingerprinters[name]; dup {
		panic("crypto: RegisterFingerprinter called twice for driver " + name)
	}
	fingerprinters[name] = driver
}

// NewRecoverer returns the recovery driver registered under name.
func NewRecoverer(name string) (Recoverer, error) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	r, ok := recoverers[name]
	if !ok {
		return nil, fmt.Errorf("unknown recoverer %q", name)
	}
	return r, nil
}

// NewFingerprinter returns the fingerprint driver registered under name.
func NewFingerprinter(name string) (Fingerprinter, error) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	f, ok := fingerprinters[name]
	if !ok {
		return nil, fmt.Errorf("unknown fingerprinter %q", name)
	}
	return f, nil
}

// FingerprinterList registered fingerprint scheme names, sorted.
func FingerprinterList() []string {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	names := make([]string, 0, len(fingerprinters))
	for name := range fingerprinters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
