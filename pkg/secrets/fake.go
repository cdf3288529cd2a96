package secrets

// FakeClient implements Client by always succeeding with an empty string. It
// lets dependent code exercise the retrieval-succeeded path without a real or
// mocked backend.
type FakeClient struct{}

var _ Client = FakeClient{}

// NewFakeClient returns a new FakeClient.
func NewFakeClient() FakeClient {
	return FakeClient{}
}

// GetByKey ignores key and returns an empty string.
func (FakeClient) GetByKey(string) (string, error) {
	return "", nil
}
