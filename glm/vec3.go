package glm

// Vec3 is laid out as three tightly packed components, a slice of Vec3f
// can be uploaded to a vertex buffer as is.
type Vec3[T numeric] [3]T
