package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	CatalogFunc          func(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error)
	PublicCatalogFunc    func(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error)
	ListAllModulesFunc   func(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error)
	ListModuleFieldsFunc func(ctx context.Context, moduleID uuid.UUID) ([]domain.Field, error)
	CreateModuleFunc     func(ctx context.Context, input catalog.CreateModuleInput) (*domain.Module, error)
	UpdateModuleFunc     func(ctx context.Context, input catalog.UpdateModuleInput) (*domain.Module, error)
	DeleteModuleFunc     func(ctx context.Context, moduleID uuid.UUID) (bool, error)
	CreateFieldFunc      func(ctx context.Context, input catalog.CreateFieldInput) (*domain.Field, error)
	UpdateFieldFunc      func(ctx context.Context, input catalog.UpdateFieldInput) (*domain.Field, error)
	DeactivateFieldFunc  func(ctx context.Context, fieldID uuid.UUID) (*domain.Field, error)
	ImportCatalogFunc    func(ctx context.Context, doc catalog.Document) (*catalog.ImportResult, error)
	ExportCatalogFunc    func(ctx context.Context, kind domain.EntityKind) (*catalog.Document, error)

	calls struct {
		Catalog []struct {
			Ctx  context.Context
			Kind domain.EntityKind
		}
		PublicCatalog []struct {
			Ctx  context.Context
			Kind domain.EntityKind
		}
		ListAllModules []struct {
			Ctx  context.Context
			Kind domain.EntityKind
		}
		ListModuleFields []struct {
			Ctx      context.Context
			ModuleID uuid.UUID
		}
		CreateModule []struct {
			Ctx   context.Context
			Input catalog.CreateModuleInput
		}
		UpdateModule []struct {
			Ctx   context.Context
			Input catalog.UpdateModuleInput
		}
		DeleteModule []struct {
			Ctx      context.Context
			ModuleID uuid.UUID
		}
		CreateField []struct {
			Ctx   context.Context
			Input catalog.CreateFieldInput
		}
		UpdateField []struct {
			Ctx   context.Context
			Input catalog.UpdateFieldInput
		}
		DeactivateField []struct {
			Ctx     context.Context
			FieldID uuid.UUID
		}
		ImportCatalog []struct {
			Ctx context.Context
			Doc catalog.Document
		}
		ExportCatalog []struct {
			Ctx  context.Context
			Kind domain.EntityKind
		}
	}
	lockCatalog          sync.RWMutex
	lockPublicCatalog    sync.RWMutex
	lockListAllModules   sync.RWMutex
	lockListModuleFields sync.RWMutex
	lockCreateModule     sync.RWMutex
	lockUpdateModule     sync.RWMutex
	lockDeleteModule     sync.RWMutex
	lockCreateField      sync.RWMutex
	lockUpdateField      sync.RWMutex
	lockDeactivateField  sync.RWMutex
	lockImportCatalog    sync.RWMutex
	lockExportCatalog    sync.RWMutex
}

func (mock *catalogServiceMock) Catalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error) {
	if mock.CatalogFunc == nil {
		panic("catalogServiceMock.CatalogFunc: method is nil but catalogService.Catalog was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockCatalog.Lock()
	mock.calls.Catalog = append(mock.calls.Catalog, callInfo)
	mock.lockCatalog.Unlock()
	return mock.CatalogFunc(ctx, kind)
}

func (mock *catalogServiceMock) CatalogCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}
	mock.lockCatalog.RLock()
	calls = mock.calls.Catalog
	mock.lockCatalog.RUnlock()
	return calls
}

func (mock *catalogServiceMock) PublicCatalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error) {
	if mock.PublicCatalogFunc == nil {
		panic("catalogServiceMock.PublicCatalogFunc: method is nil but catalogService.PublicCatalog was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockPublicCatalog.Lock()
	mock.calls.PublicCatalog = append(mock.calls.PublicCatalog, callInfo)
	mock.lockPublicCatalog.Unlock()
	return mock.PublicCatalogFunc(ctx, kind)
}

func (mock *catalogServiceMock) PublicCatalogCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}
	mock.lockPublicCatalog.RLock()
	calls = mock.calls.PublicCatalog
	mock.lockPublicCatalog.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListAllModules(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error) {
	if mock.ListAllModulesFunc == nil {
		panic("catalogServiceMock.ListAllModulesFunc: method is nil but catalogService.ListAllModules was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockListAllModules.Lock()
	mock.calls.ListAllModules = append(mock.calls.ListAllModules, callInfo)
	mock.lockListAllModules.Unlock()
	return mock.ListAllModulesFunc(ctx, kind)
}

func (mock *catalogServiceMock) ListAllModulesCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}
	mock.lockListAllModules.RLock()
	calls = mock.calls.ListAllModules
	mock.lockListAllModules.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListModuleFields(ctx context.Context, moduleID uuid.UUID) ([]domain.Field, error) {
	if mock.ListModuleFieldsFunc == nil {
		panic("catalogServiceMock.ListModuleFieldsFunc: method is nil but catalogService.ListModuleFields was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ModuleID uuid.UUID
	}{
		Ctx:      ctx,
		ModuleID: moduleID,
	}
	mock.lockListModuleFields.Lock()
	mock.calls.ListModuleFields = append(mock.calls.ListModuleFields, callInfo)
	mock.lockListModuleFields.Unlock()
	return mock.ListModuleFieldsFunc(ctx, moduleID)
}

func (mock *catalogServiceMock) ListModuleFieldsCalls() []struct {
	Ctx      context.Context
	ModuleID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		ModuleID uuid.UUID
	}
	mock.lockListModuleFields.RLock()
	calls = mock.calls.ListModuleFields
	mock.lockListModuleFields.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateModule(ctx context.Context, input catalog.CreateModuleInput) (*domain.Module, error) {
	if mock.CreateModuleFunc == nil {
		panic("catalogServiceMock.CreateModuleFunc: method is nil but catalogService.CreateModule was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateModuleInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateModule.Lock()
	mock.calls.CreateModule = append(mock.calls.CreateModule, callInfo)
	mock.lockCreateModule.Unlock()
	return mock.CreateModuleFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateModuleCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateModuleInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.CreateModuleInput
	}
	mock.lockCreateModule.RLock()
	calls = mock.calls.CreateModule
	mock.lockCreateModule.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateModule(ctx context.Context, input catalog.UpdateModuleInput) (*domain.Module, error) {
	if mock.UpdateModuleFunc == nil {
		panic("catalogServiceMock.UpdateModuleFunc: method is nil but catalogService.UpdateModule was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.UpdateModuleInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateModule.Lock()
	mock.calls.UpdateModule = append(mock.calls.UpdateModule, callInfo)
	mock.lockUpdateModule.Unlock()
	return mock.UpdateModuleFunc(ctx, input)
}

func (mock *catalogServiceMock) UpdateModuleCalls() []struct {
	Ctx   context.Context
	Input catalog.UpdateModuleInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.UpdateModuleInput
	}
	mock.lockUpdateModule.RLock()
	calls = mock.calls.UpdateModule
	mock.lockUpdateModule.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteModule(ctx context.Context, moduleID uuid.UUID) (bool, error) {
	if mock.DeleteModuleFunc == nil {
		panic("catalogServiceMock.DeleteModuleFunc: method is nil but catalogService.DeleteModule was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ModuleID uuid.UUID
	}{
		Ctx:      ctx,
		ModuleID: moduleID,
	}
	mock.lockDeleteModule.Lock()
	mock.calls.DeleteModule = append(mock.calls.DeleteModule, callInfo)
	mock.lockDeleteModule.Unlock()
	return mock.DeleteModuleFunc(ctx, moduleID)
}

func (mock *catalogServiceMock) DeleteModuleCalls() []struct {
	Ctx      context.Context
	ModuleID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		ModuleID uuid.UUID
	}
	mock.lockDeleteModule.RLock()
	calls = mock.calls.DeleteModule
	mock.lockDeleteModule.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateField(ctx context.Context, input catalog.CreateFieldInput) (*domain.Field, error) {
	if mock.CreateFieldFunc == nil {
		panic("catalogServiceMock.CreateFieldFunc: method is nil but catalogService.CreateField was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateFieldInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateField.Lock()
	mock.calls.CreateField = append(mock.calls.CreateField, callInfo)
	mock.lockCreateField.Unlock()
	return mock.CreateFieldFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateFieldCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateFieldInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.CreateFieldInput
	}
	mock.lockCreateField.RLock()
	calls = mock.calls.CreateField
	mock.lockCreateField.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateField(ctx context.Context, input catalog.UpdateFieldInput) (*domain.Field, error) {
	if mock.UpdateFieldFunc == nil {
		panic("catalogServiceMock.UpdateFieldFunc: method is nil but catalogService.UpdateField was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.UpdateFieldInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateField.Lock()
	mock.calls.UpdateField = append(mock.calls.UpdateField, callInfo)
	mock.lockUpdateField.Unlock()
	return mock.UpdateFieldFunc(ctx, input)
}

func (mock *catalogServiceMock) UpdateFieldCalls() []struct {
	Ctx   context.Context
	Input catalog.UpdateFieldInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.UpdateFieldInput
	}
	mock.lockUpdateField.RLock()
	calls = mock.calls.UpdateField
	mock.lockUpdateField.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeactivateField(ctx context.Context, fieldID uuid.UUID) (*domain.Field, error) {
	if mock.DeactivateFieldFunc == nil {
		panic("catalogServiceMock.DeactivateFieldFunc: method is nil but catalogService.DeactivateField was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		FieldID uuid.UUID
	}{
		Ctx:     ctx,
		FieldID: fieldID,
	}
	mock.lockDeactivateField.Lock()
	mock.calls.DeactivateField = append(mock.calls.DeactivateField, callInfo)
	mock.lockDeactivateField.Unlock()
	return mock.DeactivateFieldFunc(ctx, fieldID)
}

func (mock *catalogServiceMock) DeactivateFieldCalls() []struct {
	Ctx     context.Context
	FieldID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		FieldID uuid.UUID
	}
	mock.lockDeactivateField.RLock()
	calls = mock.calls.DeactivateField
	mock.lockDeactivateField.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ImportCatalog(ctx context.Context, doc catalog.Document) (*catalog.ImportResult, error) {
	if mock.ImportCatalogFunc == nil {
		panic("catalogServiceMock.ImportCatalogFunc: method is nil but catalogService.ImportCatalog was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Doc catalog.Document
	}{
		Ctx: ctx,
		Doc: doc,
	}
	mock.lockImportCatalog.Lock()
	mock.calls.ImportCatalog = append(mock.calls.ImportCatalog, callInfo)
	mock.lockImportCatalog.Unlock()
	return mock.ImportCatalogFunc(ctx, doc)
}

func (mock *catalogServiceMock) ImportCatalogCalls() []struct {
	Ctx context.Context
	Doc catalog.Document
} {
	var calls []struct {
		Ctx context.Context
		Doc catalog.Document
	}
	mock.lockImportCatalog.RLock()
	calls = mock.calls.ImportCatalog
	mock.lockImportCatalog.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ExportCatalog(ctx context.Context, kind domain.EntityKind) (*catalog.Document, error) {
	if mock.ExportCatalogFunc == nil {
		panic("catalogServiceMock.ExportCatalogFunc: method is nil but catalogService.ExportCatalog was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockExportCatalog.Lock()
	mock.calls.ExportCatalog = append(mock.calls.ExportCatalog, callInfo)
	mock.lockExportCatalog.Unlock()
	return mock.ExportCatalogFunc(ctx, kind)
}

func (mock *catalogServiceMock) ExportCatalogCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}
	mock.lockExportCatalog.RLock()
	calls = mock.calls.ExportCatalog
	mock.lockExportCatalog.RUnlock()
	return calls
}
