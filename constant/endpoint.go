package constant

// Upstream worker endpoints. Each one can be overridden through the sources.<id>.endpoint keys.
const (
	YouJizzEndpoint = "https://harrypersonal.haryvibes.workers.dev/youjizz"
	XAnimuEndpoint  = "https://harrypersonal.haryvibes.workers.dev/xanimu"
	Rule34Endpoint  = "https://workers-playground-fragrant-thunder-fc54.haryvibes.workers.dev/"
	HamsterEndpoint = "https://harrypersonal.haryvibes.workers.dev/hamster"
)
