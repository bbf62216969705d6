package house

// MaxMetrics exposes maxMetrics to the external house_test package.
const MaxMetrics = maxMetrics
