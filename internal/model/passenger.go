package model

// Passenger is the normalized record produced by the loader.
// CabinClass is always one of 1, 2, 3 (1 = highest), Survived is 0 or 1,
// and Age is non-negative (missing ages are imputed at load time).
type Passenger struct {
	CabinClass int
	Survived   int
	Age        float64
}
