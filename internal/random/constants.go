package random

// pcgStream decorrelates the two PCG state words derived from one seed
const pcgStream = 0x9E3779B97F4A7C15
