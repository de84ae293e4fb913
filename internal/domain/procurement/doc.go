// Package procurement contains the domain model and contracts for suppliers,
// purchase requisitions and equipment hires.
package procurement
