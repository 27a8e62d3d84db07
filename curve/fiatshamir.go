package curve

import "crypto/sha256"

// transcriptDigest hashes the Schnorr transcript the way both production
// backends do: SHA-256 over the 97-byte canonical encodings of the G1
// generator, the hiding base h, the commitment z and the nonces n1, n2, in
// that order. The byte and field order is fixed so that independently
// implemented backends derive identical challenges.
func transcriptDigest(g, h, z, n1, n2 G1) [32]byte {
	hs := sha256.New()
	hs.Write(g.Bytes())
	hs.Write(h.Bytes())
	hs.Write(z.Bytes())
	hs.Write(n1.Bytes())
	hs.Write(n2.Bytes())
	var d [32]byte
	copy(d[:], hs.Sum(nil))
	return d
}
