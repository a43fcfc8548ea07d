package shapes

// TriangleNormal returns normalize(cross(b-a, c-b)). The result is not finite when
// the points are collinear or coincide.
func TriangleNormal(a, b, c Point) Vector3 {
	return b.Sub(a).Vec3().Cross(c.Sub(b).Vec3()).Normalize()
}

// FlatNormals gives every vertex of each of numTriangles consecutive triangles the
// normal of its triangle. It needs 3*numTriangles normals from start.
func FlatNormals(numTriangles int, points []Point, normals []Vector3, start int) int {
	for face := range numTriangles {
		offset := start + 3*face
		n := TriangleNormal(points[offset], points[offset+1], points[offset+2])
		normals[offset] = n
		normals[offset+1] = n
		normals[offset+2] = n
	}
	return start + 3*numTriangles
}

// SphericalNormals uses each point's x, y, z as its normal, which is only correct
// for meshes whose vertices lie on a unit sphere centered at the origin.
func SphericalNormals(numPoints int, points []Point, normals []Vector3, start int) int {
	for i := start; i < start+numPoints; i++ {
		normals[i] = points[i].Vec3()
	}
	return start + numPoints
}
