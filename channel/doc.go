// Package channel represents quantum channels and converts them to their
// dynamical (Choi) matrix.
//
// A channel maps idim×idim operators to odim×odim operators. Its dynamical
// matrix lives on out⊗in (output is the left Kronecker factor):
//
//	J = Σ_k vec(K_k)·vec(K_k)†,   vec(K)[i·idim + j] = K[i,j]
//
// with vec stacking rows. A channel is trace preserving exactly when
// tr_out J = I_in, which is what IsTracePreserving checks.
//
// Three concrete forms are provided: Kraus (operator-sum), a unitary
// channel built by NewUnitary, and Dynamical, which wraps an existing J.
// All satisfy the Channel interface consumed by basis.RepresentChannel.
package channel
