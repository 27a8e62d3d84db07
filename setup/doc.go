/*
package setup runs the trusted-authority setup phase and holds the public
parameters it produces.

The setup samples a secret trapdoor alpha and a secret exponent lambda from
the caller's randomness pool, publishes the power ladders of alpha over the
generator g and over the hiding base h = lambda*g, plus alpha*g2 for the
verifier's pairing equation, and forgets both secrets. Anyone holding alpha
after the ceremony could open commitments to arbitrary sets, so in a real
deployment these parameters must come from a ceremony in which at least one
participant destroys their share honestly; running Run locally is only
appropriate for tests and benchmarks.

The parameters are immutable after Run returns: a single owner creates them
and shares read-only references with provers and verifiers.
*/
package setup
