package gpucore

// Device is the explicit handle to a graphics context and its binding state.
//
// The binding state (bound vertex-array-state, bound array buffer, enabled
// attribute slots) is shared by every caller of the same Device. Device
// implementations are not safe for concurrent use: one goroutine owns the
// context, or callers serialize access externally.
//
// Resource lifecycle:
//   - Resources are created via Create* methods
//   - Resources must be explicitly destroyed via Destroy* methods
//   - Destroying a resource while in use is undefined behavior
//   - IDs become invalid after destruction and must not be reused
type Device interface {
	// === Vertex-array-state ===

	// CreateVertexArray allocates a vertex-array-state object.
	CreateVertexArray() VertexArrayID

	// BindVertexArray makes id the active vertex-array-state.
	// Binding InvalidID leaves no vertex-array-state active.
	BindVertexArray(id VertexArrayID)

	// DestroyVertexArray releases a vertex-array-state object.
	DestroyVertexArray(id VertexArrayID)

	// === Buffer Management ===

	// CreateBuffer allocates a device buffer of desc.Size bytes.
	// Returns the buffer ID or an error if allocation fails.
	CreateBuffer(desc *BufferDesc) (BufferID, error)

	// WriteBuffer copies data into a buffer starting at offset.
	WriteBuffer(id BufferID, offset uint64, data []byte) error

	// BindBuffer attaches a buffer to a binding target.
	// Binding InvalidID detaches the target.
	BindBuffer(target BufferTarget, id BufferID)

	// DestroyBuffers releases all given buffers in one call.
	DestroyBuffers(ids ...BufferID)

	// === Attribute Layout ===

	// VertexAttribPointer binds a slot to the current ArrayBuffer with
	// floating-point fetch semantics.
	VertexAttribPointer(p AttribPointer)

	// VertexAttribIPointer binds a slot to the current ArrayBuffer with
	// pure integer fetch semantics (no conversion).
	VertexAttribIPointer(p AttribPointer)

	// EnableVertexAttribArray activates an attribute slot in the bound
	// vertex-array-state.
	EnableVertexAttribArray(index uint32)

	// === Rasterization State ===

	// PointSize sets the rasterized diameter of points.
	PointSize(size float32)

	// LineWidth sets the rasterized width of lines.
	LineWidth(width float32)

	// === Draw Calls ===

	// DrawArrays draws count vertices starting at first.
	DrawArrays(mode Primitive, first, count int32)

	// DrawArraysInstanced draws count vertices, instances times.
	DrawArraysInstanced(mode Primitive, first, count, instances int32)

	// DrawElements draws count indices from the bound element buffer.
	DrawElements(mode Primitive, count int32, typ IndexType, offset uintptr)

	// DrawElementsInstanced draws count indices, instances times.
	DrawElementsInstanced(mode Primitive, count int32, typ IndexType, offset uintptr, instances int32)
}
