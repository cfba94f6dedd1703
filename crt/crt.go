package crt

// LinearProbing - Collision resolution by stepping one slot at a time, used when no secondary hash function is given
const LinearProbing int = 1

// DoubleHashing - Collision resolution by a stride derived from the secondary hash function
const DoubleHashing int = 2
