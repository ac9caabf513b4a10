package weight

import "fmt"

// SuperMajorityThreshold returns the weight that is minimally required for a
// supermajority, i.e. the smallest integer t such that 2 * totalWeight / 3 < t.
// Formally, the minimally required weight is: 2 * Floor(totalWeight/3) + max(1, totalWeight mod 3)
func SuperMajorityThreshold(totalWeight uint64) uint64 {
	floorOneThird := totalWeight / 3 // integer division, includes floor
	res := 2 * floorOneThird
	divRemainder := totalWeight % 3
	if divRemainder <= 1 {
		res = res + 1
	} else {
		res += divRemainder
	}
	return res
}

// IsSuperMajority reports whether part is strictly more than 2/3 of total.
// The comparison is carried out in integer arithmetic so that every node
// reaches the same verdict regardless of platform floating point behavior.
// A zero total weight cannot express any threshold and is rejected as a
// configuration error.
func IsSuperMajority(part uint64, total uint64) (bool, error) {
	if total == 0 {
		return false, fmt.Errorf("cannot evaluate supermajority of zero total weight")
	}
	return part >= SuperMajorityThreshold(total), nil
}
