// Package driver implements the Driver profile aggregate: the directory's
// authoritative record of which drivers are online and which order each one
// currently carries. The assignment workflow owns all writes to the
// current-order tie; order state lives in the order package.
package driver
